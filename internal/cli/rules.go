package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/htmlvet/internal/logging"
	"github.com/yaklabco/htmlvet/pkg/check"
	_ "github.com/yaklabco/htmlvet/pkg/check/rules" // Register built-in rules
)

const formatJSON = "json"

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

func newRulesCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available document checks",
		Long: `List all available checks with their IDs, names, descriptions, and tags.
Checks run in ID order, which is also the order of the report.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rules := check.DefaultRegistry.Rules()

			if format == formatJSON {
				return outputRulesJSON(cmd, rules)
			}

			logger := logging.NewInteractive()

			if len(rules) == 0 {
				logger.Info("no rules registered")
				return nil
			}

			logger.Info("available checks")

			for _, rule := range rules {
				logger.Info(rule.ID()+"/"+rule.Name(),
					logging.FieldTags, strings.Join(rule.Tags(), ","),
					logging.FieldDescription, rule.Description(),
				)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json")

	return cmd
}

// outputRulesJSON outputs rules as a JSON array.
func outputRulesJSON(cmd *cobra.Command, rules []check.Rule) error {
	infos := make([]ruleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, ruleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Description: rule.Description(),
			Tags:        rule.Tags(),
		})
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
