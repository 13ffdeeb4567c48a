package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"genie-relay/backend/internal/model"
)

var conversationID string

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Send a question to Genie and wait for the answer",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService(cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		resp, err := svc.SendMessage(cmd.Context(), &model.ChatRequest{
			Content:        strings.Join(args, " "),
			ConversationID: conversationID,
		})
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), resp)
	},
}

func init() {
	askCmd.Flags().StringVarP(&conversationID, "conversation", "c", "", "Continue an existing conversation")
	rootCmd.AddCommand(askCmd)
}
