// Package catalog merges the three assistant sources (built-in recommended,
// built-in community, user-created) into one addressable-by-id view.
package catalog

import (
	"cityassist/internal/models"
)

// Resolver answers id lookups across all assistant sources. User-created
// assistants live in the state controller, so they are supplied through a
// provider callback and always reflect the live collection.
type Resolver struct {
	recommended []models.Assistant
	community   []models.Assistant
	user        func() []models.Assistant
}

func NewResolver(user func() []models.Assistant) *Resolver {
	if user == nil {
		user = func() []models.Assistant { return nil }
	}
	return &Resolver{
		recommended: Recommended(),
		community:   Community(),
		user:        user,
	}
}

// Resolve finds an assistant by id: user-created first, then recommended,
// then community. Ids are globally unique across sources; lookup order is
// the tie-break if they are not. Returns nil when no source matches.
func (r *Resolver) Resolve(id string) *models.Assistant {
	if id == "" {
		return nil
	}
	for _, group := range [][]models.Assistant{r.user(), r.recommended, r.community} {
		for i := range group {
			if group[i].ID == id {
				a := group[i]
				return &a
			}
		}
	}
	return nil
}

// Merged returns the full catalog in fixed order: recommended, community,
// then user-created. This order is the default display order before any
// sort or filter is applied.
func (r *Resolver) Merged() []models.Assistant {
	user := r.user()
	out := make([]models.Assistant, 0, len(r.recommended)+len(r.community)+len(user))
	out = append(out, r.recommended...)
	out = append(out, r.community...)
	out = append(out, user...)
	return out
}

// Recommended returns the built-in recommended assistants.
func (r *Resolver) RecommendedAssistants() []models.Assistant {
	return r.recommended
}
