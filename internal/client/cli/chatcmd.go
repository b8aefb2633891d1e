package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/agoramujeres/agora-client/internal/client/chat"
	"github.com/agoramujeres/agora-client/internal/client/i18n"
	"github.com/agoramujeres/agora-client/internal/client/models"
	"github.com/agoramujeres/agora-client/internal/common"
)

// Chat sends one message to the companion and prints the reply. When the
// server demands a subscription the paywall hint is shown instead.
func (a *App) Chat(ctx context.Context, message string) error {
	res, err := a.resolver.Send(ctx, message)
	if err != nil {
		if errors.Is(err, common.ErrSendInProgress) {
			fmt.Println("Still sending the previous message")
			return err
		}
		// The resolver already appended a localized error line.
		a.printLastLine()
		return err
	}

	if res.RequiresSubscription {
		fmt.Println(i18n.T(a.sess.Language(), "trial_ended"))
		a.resolver.Reset()
		return nil
	}

	fmt.Println(res.Reply)
	return nil
}

// NewChat clears the server history and starts a fresh conversation.
func (a *App) NewChat(ctx context.Context) error {
	if err := a.resolver.NewConversation(ctx); err != nil {
		fmt.Println("Error starting a new conversation:", err)
		return err
	}
	a.printLastLine()
	return nil
}

// Conversations lists the saved conversation threads.
func (a *App) Conversations(ctx context.Context) error {
	conversations, err := a.gateway.ListConversations(ctx, a.sess.DeviceID(), 20)
	if err != nil {
		fmt.Println("Error fetching conversations:", err)
		return err
	}
	if len(conversations) == 0 {
		fmt.Println("No saved conversations")
		return nil
	}
	for _, c := range conversations {
		fmt.Printf("%s  %s  %s\n", c.ID, c.UpdatedAt.Format("2006-01-02 15:04"), c.Title)
	}
	return nil
}

// OpenConversation resumes a saved conversation and prints its transcript.
func (a *App) OpenConversation(ctx context.Context, id string) error {
	if err := a.resolver.LoadConversation(ctx, id); err != nil {
		fmt.Println("Error opening conversation:", err)
		return err
	}
	for _, entry := range a.resolver.Transcript() {
		printEntry(entry)
	}
	return nil
}

// DeleteConversation removes a saved conversation server side.
func (a *App) DeleteConversation(ctx context.Context, id string) error {
	if err := a.gateway.DeleteConversation(ctx, a.sess.DeviceID(), id); err != nil {
		fmt.Println("Error deleting conversation:", err)
		return err
	}
	if a.resolver.ConversationID() == id {
		a.resolver.Reset()
	}
	fmt.Println("Conversation deleted")
	return nil
}

func (a *App) printLastLine() {
	transcript := a.resolver.Transcript()
	if len(transcript) > 0 {
		printEntry(transcript[len(transcript)-1])
	}
}

func printEntry(entry chat.Entry) {
	prefix := "tú"
	if entry.Role == models.RoleAssistant {
		prefix = "aurora"
	}
	suffix := ""
	if entry.Delivery == chat.DeliveryFailed {
		suffix = " (not delivered)"
	}
	fmt.Printf("%s: %s%s\n", prefix, entry.Content, suffix)
}
