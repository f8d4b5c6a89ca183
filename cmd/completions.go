package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/healthdash/internal/model"
	"github.com/manav03panchal/healthdash/internal/settings"
)

// completeStretchTypes returns a completion function for stretch slugs.
func completeStretchTypes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	for _, s := range model.StretchTypes() {
		slug := stretchSlug(s.Name)
		if strings.HasPrefix(slug, toComplete) {
			completions = append(completions, slug+"\t"+s.Description)
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

// stretchSlug turns "Neck & Shoulders" into "neck-shoulders".
func stretchSlug(name string) string {
	fields := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return r == ' ' || r == '&'
	})
	return strings.Join(fields, "-")
}

// completeSettingKeys completes the KEY argument of config get/set.
func completeSettingKeys(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	for _, f := range settings.Fields() {
		if strings.HasPrefix(f.Key, toComplete) {
			completions = append(completions, f.Key+"\t"+f.Description)
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}
