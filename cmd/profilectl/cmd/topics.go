package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	// Defines the event topics.
	_ "github.com/nfrund/sellerprofile/internal/events"
	"github.com/nfrund/sellerprofile/internal/pubsub"
	"github.com/spf13/cobra"
)

type topicInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func newTopicsCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "topics",
		Short: "List the event topics published on the bus",
		RunE: func(cmd *cobra.Command, args []string) error {
			var topics []topicInfo
			for _, name := range pubsub.Topics() {
				topics = append(topics, topicInfo{Name: name, Description: pubsub.Describe(name)})
			}

			switch format {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(topics)
			case "table":
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "TOPIC\tDESCRIPTION")
				for _, t := range topics {
					fmt.Fprintf(w, "%s\t%s\n", t.Name, t.Description)
				}
				return w.Flush()
			default:
				return fmt.Errorf("invalid format %q: valid formats are table, json", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format (table, json)")
	return cmd
}
