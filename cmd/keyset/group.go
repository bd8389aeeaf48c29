package main

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/keyset/keyset"
)

var (
	groupField         string
	groupCaseSensitive bool
)

var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Partition the member file into groups by an attribute",
	Long: `Group members by the value of an attribute. Group keys are folded to
lower case unless --case-sensitive is given. Every member must have a
non-empty value for the attribute; grouping fails otherwise.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCollection(inputPath)
		if err != nil {
			return fail("%v", err)
		}

		groups, err := c.GroupBy(groupField, !groupCaseSensitive)
		if err != nil {
			return fail("grouping failed: %v", err)
		}

		out := make([]any, 0, groups.Len())
		for _, name := range groups.Keys() {
			sub := groups.Get(name).(*keyset.Collection)
			out = append(out, map[string]any{
				"group":   name,
				"members": sub.ToArray(nil),
			})
		}
		return writeResult(out)
	},
}

func init() {
	groupCmd.Flags().StringVar(&groupField, "field", "", "attribute to group by (required)")
	groupCmd.Flags().BoolVar(&groupCaseSensitive, "case-sensitive", false, "do not fold group keys to lower case")
	_ = groupCmd.MarkFlagRequired("field")
}
