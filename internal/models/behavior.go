package models

// ResponseBehavior is the coarse generation-style knob of an assistant or
// chat.
type ResponseBehavior string

const (
	BehaviorPrecise  ResponseBehavior = "precise"
	BehaviorBalanced ResponseBehavior = "balanced"
	BehaviorCreative ResponseBehavior = "creative"
)

func ResponseBehaviors() []ResponseBehavior {
	return []ResponseBehavior{BehaviorPrecise, BehaviorBalanced, BehaviorCreative}
}

func (b ResponseBehavior) Valid() bool {
	switch b {
	case BehaviorPrecise, BehaviorBalanced, BehaviorCreative:
		return true
	}
	return false
}

// Temperature maps a behavior onto a sampling temperature for live
// backends.
func (b ResponseBehavior) Temperature() float32 {
	switch b {
	case BehaviorPrecise:
		return 0.2
	case BehaviorCreative:
		return 1.0
	default:
		return 0.7
	}
}

// EffectiveBehavior resolves the behavior used for a reply: the chat's
// setting wins over the assistant's, and everything falls back to balanced.
func EffectiveBehavior(chat *Chat, assistant *Assistant) ResponseBehavior {
	if chat != nil && chat.ResponseBehavior.Valid() {
		return chat.ResponseBehavior
	}
	if assistant != nil && assistant.ResponseBehavior.Valid() {
		return assistant.ResponseBehavior
	}
	return BehaviorBalanced
}
