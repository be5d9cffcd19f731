package component

// Kind tags an entity for collision and hit dispatch
type Kind uint8

const (
	KindScenery Kind = iota // Backgrounds, banners
	KindLabel               // HUD text
	KindPlayer
	KindEnemy
	KindBullet
)

func (k Kind) String() string {
	switch k {
	case KindScenery:
		return "scenery"
	case KindLabel:
		return "label"
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindBullet:
		return "bullet"
	default:
		return "unknown"
	}
}
