package handlers

import "github.com/anaphygon/portfolio/internal/usecase"

type Handlers struct {
	usecase    usecase.Usecase
	ownerEmail string
}

func NewHandlers(uc usecase.Usecase, ownerEmail string) *Handlers {
	return &Handlers{
		usecase:    uc,
		ownerEmail: ownerEmail,
	}
}
