package client

import (
	"fmt"

	"github.com/dmitrijs2005/todocards/internal/client/models"
	"github.com/dmitrijs2005/todocards/internal/common"
	pb "github.com/dmitrijs2005/todocards/internal/proto"
)

func fromWire(w pb.Card) (models.Card, error) {
	if len(w.Todos) != common.TodoSlots {
		return models.Card{}, fmt.Errorf("%w: card %s has %d todos", common.ErrCorruptSlate, w.ID, len(w.Todos))
	}

	c := models.Card{ID: w.ID, Title: w.Title, Labels: w.Labels}
	for i, t := range w.Todos {
		c.Todos[i] = models.Todo{Content: t.Content, Completed: t.Completed}
	}
	return c, nil
}

func fromWireList(ws []pb.Card) ([]models.Card, error) {
	cards := make([]models.Card, 0, len(ws))
	for _, w := range ws {
		c, err := fromWire(w)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func toWireUpdate(c models.Card) pb.CardUpdate {
	u := pb.CardUpdate{ID: c.ID, Title: c.Title, Todos: make([]pb.Todo, len(c.Todos))}
	for i, t := range c.Todos {
		u.Todos[i] = pb.Todo{Content: t.Content, Completed: t.Completed}
	}
	return u
}

func labelNames(ls []pb.Label) []string {
	names := make([]string, len(ls))
	for i, l := range ls {
		names[i] = l.Name
	}
	return names
}
