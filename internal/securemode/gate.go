// Package securemode implements the private/secure workspace gate: a small
// state machine around the secure flag, the one-time intro acknowledgement
// and the set of selectable model identifiers.
package securemode

import (
	"github.com/rs/zerolog/log"

	"cityassist/internal/store"
)

type State int

const (
	// Standard is the default mode: all models are selectable.
	Standard State = iota

	// AwaitingIntroAck means the user tried to enable secure mode but has
	// not acknowledged the one-time intro yet.
	AwaitingIntroAck

	// Secure restricts model selection to private-allowed models.
	Secure
)

func (s State) String() string {
	switch s {
	case AwaitingIntroAck:
		return "awaiting-intro-ack"
	case Secure:
		return "secure"
	default:
		return "standard"
	}
}

// Gate owns the secure-mode state. The intro acknowledgement flag is
// persisted; the mode itself is session state.
type Gate struct {
	state State
	kv    store.KV
}

func NewGate(kv store.KV) *Gate {
	return &Gate{state: Standard, kv: kv}
}

func (g *Gate) State() State { return g.state }

// Active reports whether secure mode is engaged.
func (g *Gate) Active() bool { return g.state == Secure }

// Enable requests secure mode. Already secure is a no-op. The first ever
// request detours through the intro modal without touching the persisted
// flag; later requests engage directly.
func (g *Gate) Enable() State {
	if g.state == Secure {
		return g.state
	}
	if !store.LoadFlag(g.kv, store.KeyHasSeenSecureIntro) {
		g.state = AwaitingIntroAck
		return g.state
	}
	g.state = Secure
	log.Info().Msg("secure mode enabled")
	return g.state
}

// ConfirmIntro acknowledges the intro: the flag is persisted and secure
// mode engages.
func (g *Gate) ConfirmIntro() State {
	if err := store.SetFlag(g.kv, store.KeyHasSeenSecureIntro); err != nil {
		log.Error().Err(err).Msg("failed to persist secure intro flag")
	}
	g.state = Secure
	log.Info().Msg("secure mode enabled after intro")
	return g.state
}

// CancelIntro dismisses the intro without acknowledging it; the flag stays
// unset and the next Enable shows the intro again.
func (g *Gate) CancelIntro() State {
	if g.state == AwaitingIntroAck {
		g.state = Standard
	}
	return g.state
}

// Disable leaves secure mode unconditionally.
func (g *Gate) Disable() State {
	g.state = Standard
	return g.state
}

// Toggle flips between standard and secure, running the intro detour when
// needed.
func (g *Gate) Toggle() State {
	if g.state == Secure {
		return g.Disable()
	}
	return g.Enable()
}

// SelectableModels returns the models offered in the current mode: only
// private-allowed models while secure, everything otherwise.
func (g *Gate) SelectableModels() []LLMModel {
	all := Models()
	if !g.Active() {
		return all
	}
	var out []LLMModel
	for _, m := range all {
		if m.PrivateAllowed {
			out = append(out, m)
		}
	}
	return out
}

// SelectModel records the user picking a model. Choosing a private-allowed
// model while in standard mode engages secure mode as a side effect (model
// choice drives mode, not just the reverse). The returned state reflects
// any transition.
func (g *Gate) SelectModel(id string) State {
	m, ok := ModelByID(id)
	if !ok {
		return g.state
	}
	if m.PrivateAllowed && !g.Active() {
		return g.Enable()
	}
	return g.state
}
