package commands

import (
	"context"

	"obsidex/internal/application"
	"obsidex/internal/domain"
	"obsidex/internal/ports"
)

// InvokeCommand runs an action of an indexed item
type InvokeCommand struct {
	index    ports.IndexReader
	opener   ports.Opener
	ItemID   string
	ActionID string // Empty runs the item's first action
}

// NewInvokeCommand creates a new InvokeCommand
func NewInvokeCommand(index ports.IndexReader, opener ports.Opener, itemID, actionID string) *InvokeCommand {
	return &InvokeCommand{
		index:    index,
		opener:   opener,
		ItemID:   itemID,
		ActionID: actionID,
	}
}

// Validate checks the command parameters
func (c *InvokeCommand) Validate() error {
	return application.ValidateRequired("itemID", c.ItemID)
}

// Execute resolves the item in the current index and runs the action
func (c *InvokeCommand) Execute(ctx context.Context) (domain.Action, error) {
	if err := c.Validate(); err != nil {
		return domain.Action{}, err
	}

	item, ok := c.index.Lookup(c.ItemID)
	if !ok {
		return domain.Action{}, &application.ActionError{
			ItemID:   c.ItemID,
			ActionID: c.ActionID,
			Err:      application.ErrUnknownItem,
		}
	}
	return RunAction(c.opener, item, c.ActionID)
}

// RunAction runs an action of any item, indexed or not.
// An empty actionID selects the first action.
func RunAction(opener ports.Opener, item domain.Item, actionID string) (domain.Action, error) {
	action, err := ResolveAction(item, actionID)
	if err != nil {
		return domain.Action{}, err
	}
	if err := opener.Run(action); err != nil {
		return action, &application.ActionError{ItemID: item.ID(), ActionID: action.ID, Err: err}
	}
	return action, nil
}

// ResolveAction picks an action of item by id; an empty id selects the first action
func ResolveAction(item domain.Item, actionID string) (domain.Action, error) {
	if actionID == "" {
		if actions := item.Actions(); len(actions) > 0 {
			return actions[0], nil
		}
	} else if a, ok := domain.FindAction(item, actionID); ok {
		return a, nil
	}
	return domain.Action{}, &application.ActionError{
		ItemID:   item.ID(),
		ActionID: actionID,
		Err:      application.ErrUnknownAction,
	}
}
