// Package models defines the card shapes the todocards CLI works with.
package models

import "github.com/dmitrijs2005/todocards/internal/common"

type Todo struct {
	Content   string
	Completed bool
}

// Card is the client's copy of a server card. Todos always has every slot.
type Card struct {
	ID     string
	Title  string
	Todos  [common.TodoSlots]Todo
	Labels []string
}

// Clone returns a copy that shares no memory with c.
func (c Card) Clone() Card {
	out := c
	if c.Labels != nil {
		out.Labels = append([]string(nil), c.Labels...)
	}
	return out
}

// Draft is the optional payload of a card creation.
type Draft struct {
	Title string
	Todos []string
}
