package handler

import (
	"github.com/securedocs/docvault/internal/core/domain"
)

// Response projections owned by the transport layer. Entities are never
// serialized directly: the password digest and the system-managed
// timestamps must not appear in any payload, so every endpoint renders
// one of these shapes.

type userResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	PublicKey string `json:"publicKey"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type documentResponse struct {
	ID               int64  `json:"id"`
	Filename         string `json:"filename"`
	OriginalName     string `json:"originalname"`
	DigitalSignature string `json:"digitalSignature"`
}

// groupResponse is the lightweight shape used by the group listing; the
// relation-bearing shapes below are used by the endpoints that hydrate
// them.
type groupResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type groupWithUsersResponse struct {
	ID    int64          `json:"id"`
	Name  string         `json:"name"`
	Users []userResponse `json:"users"`
}

type groupWithDocumentsResponse struct {
	ID        int64              `json:"id"`
	Name      string             `json:"name"`
	Documents []documentResponse `json:"documents"`
}

type groupFullResponse struct {
	ID        int64              `json:"id"`
	Name      string             `json:"name"`
	Users     []userResponse     `json:"users"`
	Documents []documentResponse `json:"documents"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		PublicKey: u.PublicKey,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func toUserResponses(users []domain.User) []userResponse {
	out := make([]userResponse, len(users))
	for i := range users {
		out[i] = toUserResponse(&users[i])
	}
	return out
}

func toDocumentResponse(d *domain.Document) documentResponse {
	return documentResponse{
		ID:               d.ID,
		Filename:         d.Filename,
		OriginalName:     d.OriginalName,
		DigitalSignature: d.DigitalSignature,
	}
}

func toDocumentResponses(docs []domain.Document) []documentResponse {
	out := make([]documentResponse, len(docs))
	for i := range docs {
		out[i] = toDocumentResponse(&docs[i])
	}
	return out
}

func toGroupResponses(groups []domain.Group) []groupResponse {
	out := make([]groupResponse, len(groups))
	for i, g := range groups {
		out[i] = groupResponse{ID: g.ID, Name: g.Name}
	}
	return out
}

func toGroupWithUsersResponse(g *domain.Group) groupWithUsersResponse {
	return groupWithUsersResponse{
		ID:    g.ID,
		Name:  g.Name,
		Users: toUserResponses(g.Users),
	}
}

func toGroupWithDocumentsResponse(g *domain.Group) groupWithDocumentsResponse {
	return groupWithDocumentsResponse{
		ID:        g.ID,
		Name:      g.Name,
		Documents: toDocumentResponses(g.Documents),
	}
}

func toGroupFullResponse(g *domain.Group) groupFullResponse {
	return groupFullResponse{
		ID:        g.ID,
		Name:      g.Name,
		Users:     toUserResponses(g.Users),
		Documents: toDocumentResponses(g.Documents),
	}
}
