package httpapi

import (
	"github.com/dmitrijs2005/todocards/internal/server/models"
)

type todoPayload struct {
	Content   string `json:"content"`
	Completed bool   `json:"completed"`
}

type cardPayload struct {
	ID     string        `json:"id"`
	Title  string        `json:"title"`
	Todos  []todoPayload `json:"todos"`
	Labels []string      `json:"labels"`
}

type labelPayload struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type signupResponse struct {
	Token string `json:"token"`
}

type createCardRequest struct {
	Title string   `json:"title"`
	Todos []string `json:"todos"`
}

type createCardResponse struct {
	ID string `json:"id"`
}

type updateCardRequest struct {
	Title string        `json:"title"`
	Todos []todoPayload `json:"todos"`
}

type setLabelsRequest struct {
	Labels []string `json:"labels"`
}

type setLabelsResponse struct {
	Labels []labelPayload `json:"labels"`
}

type exportResponse struct {
	URL string `json:"url"`
}

func toCardPayload(c *models.Card) cardPayload {
	p := cardPayload{
		ID:     c.ID,
		Title:  c.Title,
		Todos:  make([]todoPayload, len(c.Todos)),
		Labels: models.LabelNames(c.Labels),
	}
	for i, t := range c.Todos {
		p.Todos[i] = todoPayload{Content: t.Content, Completed: t.Completed}
	}
	return p
}

func (r updateCardRequest) slate() (models.Slate, error) {
	todos := make([]models.Todo, len(r.Todos))
	for i, t := range r.Todos {
		todos[i] = models.Todo{Content: t.Content, Completed: t.Completed}
	}
	return models.NewSlate(todos)
}
