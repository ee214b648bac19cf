package card

import "fmt"

// Suit defines the four card suits using a typed enum. Display order is
// Hearts, Diamonds, Clubs, Spades; it has no gameplay meaning.
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

func (s Suit) String() string {
	return []string{"hearts", "diamonds", "clubs", "spades"}[s]
}

// Role is what a suit means inside the dungeon.
type Role int

const (
	RoleHealth Role = iota
	RoleWeapon
	RoleMonster
)

func (r Role) String() string {
	return []string{"health", "weapon", "monster"}[r]
}

// Role returns the fixed semantic role of the suit. Hearts heal, diamonds
// are weapons, and both black suits are monsters.
func (s Suit) Role() Role {
	switch s {
	case Hearts:
		return RoleHealth
	case Diamonds:
		return RoleWeapon
	default:
		return RoleMonster
	}
}

// Rank is the numeric strength of a card, 2 through 14. Face cards count as
// 11, 12, 13 and the ace is the strongest at 14.
type Rank int

const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return fmt.Sprintf("%d", int(r))
	}
}

// Ranks lists every rank from weakest to strongest.
func Ranks() []Rank {
	return []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
}

// Suits lists the suits in display order.
func Suits() []Suit {
	return []Suit{Hearts, Diamonds, Clubs, Spades}
}

// Card is an immutable suit/rank pair. Cards are pure values: two cards with
// the same suit and rank are the same card, and deck operations look cards up
// by that equality.
type Card struct {
	Suit Suit
	Rank Rank
}

// Value is the number the card is worth in play: healing amount, weapon
// strength, or monster strength depending on role.
func (c Card) Value() int {
	return int(c.Rank)
}

// Role is derived strictly from the suit and never changes.
func (c Card) Role() Role {
	return c.Suit.Role()
}

func (c Card) IsHealth() bool  { return c.Role() == RoleHealth }
func (c Card) IsWeapon() bool  { return c.Role() == RoleWeapon }
func (c Card) IsMonster() bool { return c.Role() == RoleMonster }

// Label returns the in-game display name, e.g. "Monster(14)".
func (c Card) Label() string {
	var name string
	switch c.Role() {
	case RoleHealth:
		name = "Health"
	case RoleWeapon:
		name = "Weapon"
	default:
		name = "Monster"
	}
	return fmt.Sprintf("%s(%d)", name, c.Value())
}

// String returns the short playing-card name, e.g. "A of spades".
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// InDungeon reports whether the suit/rank pair belongs in a scoundrel
// dungeon. Black cards all qualify; red royals (ace, jack, queen, king of
// hearts and diamonds) are excluded by game convention. In half-monsters
// mode spades are excluded too, leaving clubs as the only monster suit.
func InDungeon(s Suit, r Rank, halfMonsters bool) bool {
	switch s {
	case Spades:
		return !halfMonsters
	case Clubs:
		return true
	default:
		return r != Ace && r != Jack && r != Queen && r != King
	}
}

// NewDungeon builds the unshuffled dungeon deck. Shuffling is the caller's
// concern; the engine takes the deck as given.
func NewDungeon(halfMonsters bool) []Card {
	var cards []Card
	for _, s := range Suits() {
		for _, r := range Ranks() {
			if InDungeon(s, r, halfMonsters) {
				cards = append(cards, Card{Suit: s, Rank: r})
			}
		}
	}
	return cards
}
