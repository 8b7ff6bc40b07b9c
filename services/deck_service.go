package services

import (
	"fmt"
	"log"
	"sync"

	"github.com/bowale01/spirited-travels-africa/models"
)

// DeckCard is one destination card in the discovery deck.
type DeckCard struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Location   string   `json:"location"`
	Image      string   `json:"image"`
	Desc       string   `json:"description"`
	Activities []string `json:"activities"`
	Budget     string   `json:"budget"`
	Duration   string   `json:"duration"`
	BestTime   string   `json:"bestTime"`
	Highlights []string `json:"highlights"`
	Difficulty string   `json:"difficulty"`
	GroupSize  string   `json:"groupSize"`
}

// DeckState is what a caller sees of their own deck.
type DeckState struct {
	Index     int       `json:"index"`
	Total     int       `json:"total"`
	Exhausted bool      `json:"exhausted"`
	Card      *DeckCard `json:"card,omitempty"`
	Notice    string    `json:"notice,omitempty"`
}

// DeckService presents the finite, pre-seeded destination deck with an
// advance-only cursor per user. Cursors live in memory and are not
// persisted; a restart starts every deck over.
type DeckService struct {
	mu      sync.Mutex
	cursors map[string]int
}

// NewDeckService returns a DeckService with empty cursors.
func NewDeckService() *DeckService {
	return &DeckService{cursors: make(map[string]int)}
}

// State returns the caller's current deck position and the card under the
// cursor, without advancing.
func (dk *DeckService) State(userID string) DeckState {
	dk.mu.Lock()
	defer dk.mu.Unlock()
	return stateAt(dk.cursors[userID], "")
}

// Pass advances past the current card.
func (dk *DeckService) Pass(userID string) DeckState {
	dk.mu.Lock()
	defer dk.mu.Unlock()
	return stateAt(dk.advanceLocked(userID), "")
}

// Info returns the full detail of the current card. The cursor does not
// move.
func (dk *DeckService) Info(userID string) (DeckState, error) {
	dk.mu.Lock()
	defer dk.mu.Unlock()
	index := dk.cursors[userID]
	if index >= len(deckCards) {
		return stateAt(index, ""), fmt.Errorf("deck is exhausted")
	}
	return stateAt(index, ""), nil
}

// Like saves the current card to the caller's wishlist and advances.
func (dk *DeckService) Like(userID string) DeckState {
	dk.mu.Lock()
	defer dk.mu.Unlock()
	index := dk.cursors[userID]
	notice := ""
	if index < len(deckCards) {
		notice = fmt.Sprintf("%s saved to your wishlist", deckCards[index].Name)
		log.Printf("User %s liked destination %q", userID, deckCards[index].Name)
	}
	return stateAt(dk.advanceLocked(userID), notice)
}

// SuperLike saves the current card to the caller's bucket list and advances.
func (dk *DeckService) SuperLike(userID string) DeckState {
	dk.mu.Lock()
	defer dk.mu.Unlock()
	index := dk.cursors[userID]
	notice := ""
	if index < len(deckCards) {
		notice = fmt.Sprintf("%s added to your bucket list", deckCards[index].Name)
		log.Printf("User %s super-liked destination %q", userID, deckCards[index].Name)
	}
	return stateAt(dk.advanceLocked(userID), notice)
}

// Reset starts the caller's deck over from the first card. This is the only
// way back from an exhausted deck.
func (dk *DeckService) Reset(userID string) DeckState {
	dk.mu.Lock()
	defer dk.mu.Unlock()
	dk.cursors[userID] = 0
	return stateAt(0, "")
}

// advanceLocked moves the cursor forward one card, clamped at the deck
// length. The caller must hold dk.mu.
func (dk *DeckService) advanceLocked(userID string) int {
	index := dk.cursors[userID]
	if index < len(deckCards) {
		index++
	}
	dk.cursors[userID] = index
	return index
}

func stateAt(index int, notice string) DeckState {
	state := DeckState{
		Index:     index,
		Total:     len(deckCards),
		Exhausted: index >= len(deckCards),
		Notice:    notice,
	}
	if !state.Exhausted {
		card := deckCards[index]
		state.Card = &card
	}
	return state
}

// SeedDestinations converts the deck dataset into catalog records so a
// fresh environment has a populated Destinations table.
func SeedDestinations() []models.Destination {
	seeded := make([]models.Destination, 0, len(deckCards))
	for _, card := range deckCards {
		seeded = append(seeded, models.Destination{
			ID:          fmt.Sprintf("seed-%d", card.ID),
			Name:        card.Name,
			Country:     card.Location,
			Region:      "Africa",
			Description: card.Desc,
			Activities:  card.Activities,
			Difficulty:  card.Difficulty,
			ImageURLs:   []string{card.Image},
			IsPopular:   true,
		})
	}
	return seeded
}

// The eight destination cards the discovery deck ships with.
var deckCards = []DeckCard{
	{
		ID:         1,
		Name:       "Victoria Falls",
		Location:   "Zambia/Zimbabwe",
		Image:      "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=800",
		Desc:       `Experience the thundering majesty of "Mosi-oa-Tunya" - the smoke that thunders`,
		Activities: []string{"Bungee Jumping", "White Water Rafting", "Helicopter Tours", "Devil's Pool"},
		Budget:     "$1,200 - $2,500",
		Duration:   "5-7 days",
		BestTime:   "April - June",
		Highlights: []string{"World's largest waterfall curtain", "Adrenaline adventures", "UNESCO World Heritage"},
		Difficulty: "Moderate",
		GroupSize:  "2-12 people",
	},
	{
		ID:         2,
		Name:       "Serengeti Safari",
		Location:   "Tanzania",
		Image:      "https://images.unsplash.com/photo-1534177616072-ef7dc120449d?w=800",
		Desc:       "Witness the Great Migration - 2 million wildebeest crossing the endless plains",
		Activities: []string{"Game Drives", "Hot Air Balloon", "Maasai Cultural Tours", "Night Safari"},
		Budget:     "$2,000 - $4,000",
		Duration:   "7-10 days",
		BestTime:   "June - October",
		Highlights: []string{"Great Migration", "Big Five sightings", "Maasai culture"},
		Difficulty: "Easy",
		GroupSize:  "4-8 people",
	},
	{
		ID:         3,
		Name:       "Kilimanjaro Trek",
		Location:   "Tanzania",
		Image:      "https://images.unsplash.com/photo-1609198092458-38a293c7ac4b?w=800",
		Desc:       "Conquer Africa's highest peak - the Roof of Africa at 19,341 feet",
		Activities: []string{"Mountain Trekking", "Summit Attempt", "Wildlife Spotting", "Photography"},
		Budget:     "$1,800 - $3,500",
		Duration:   "6-9 days",
		BestTime:   "January - March, June - October",
		Highlights: []string{"Uhuru Peak summit", "Multiple climate zones", "Glacial views"},
		Difficulty: "Challenging",
		GroupSize:  "6-12 people",
	},
	{
		ID:         4,
		Name:       "Sahara Desert",
		Location:   "Morocco",
		Image:      "https://images.unsplash.com/photo-1509316975850-ff9c5deb0cd9?w=800",
		Desc:       "Sleep under a blanket of stars in the world's largest hot desert",
		Activities: []string{"Camel Trekking", "Desert Camping", "Berber Culture", "Sandboarding"},
		Budget:     "$600 - $1,200",
		Duration:   "3-5 days",
		BestTime:   "October - April",
		Highlights: []string{"Erg Chebbi dunes", "Nomadic culture", "Stargazing"},
		Difficulty: "Easy",
		GroupSize:  "4-15 people",
	},
	{
		ID:         5,
		Name:       "Cape Town Adventure",
		Location:   "South Africa",
		Image:      "https://images.unsplash.com/photo-1580060839134-75a5edca2e99?w=800",
		Desc:       "The Mother City where oceans meet mountains and cultures blend",
		Activities: []string{"Table Mountain Hike", "Wine Tours", "Penguin Colony", "Shark Cage Diving"},
		Budget:     "$800 - $1,800",
		Duration:   "4-6 days",
		BestTime:   "November - March",
		Highlights: []string{"Table Mountain views", "Cape Winelands", "African penguins"},
		Difficulty: "Easy",
		GroupSize:  "2-10 people",
	},
	{
		ID:         6,
		Name:       "Okavango Delta",
		Location:   "Botswana",
		Image:      "https://images.unsplash.com/photo-1516426122078-c23e76319801?w=800",
		Desc:       "Navigate the pristine waterways of Africa's last Eden",
		Activities: []string{"Mokoro Trips", "Game Drives", "Walking Safari", "Bird Watching"},
		Budget:     "$2,500 - $5,000",
		Duration:   "5-8 days",
		BestTime:   "May - September",
		Highlights: []string{"Water-based safari", "Pristine wilderness", "Luxury lodges"},
		Difficulty: "Easy",
		GroupSize:  "2-8 people",
	},
	{
		ID:         7,
		Name:       "Gorilla Trekking",
		Location:   "Rwanda/Uganda",
		Image:      "https://images.unsplash.com/photo-1564760055775-d63b17a55c44?w=800",
		Desc:       "Meet our closest relatives in the misty mountains of Central Africa",
		Activities: []string{"Gorilla Trekking", "Golden Monkey Trek", "Cultural Villages", "Canopy Walk"},
		Budget:     "$2,000 - $4,500",
		Duration:   "4-7 days",
		BestTime:   "June - September, December - February",
		Highlights: []string{"Mountain gorillas", "Volcanoes National Park", "Conservation experience"},
		Difficulty: "Moderate",
		GroupSize:  "8 people max",
	},
	{
		ID:         8,
		Name:       "Zanzibar Spice Island",
		Location:   "Tanzania",
		Image:      "https://images.unsplash.com/photo-1544735716-392fe2489ffa?w=800",
		Desc:       "Pristine beaches meet ancient Swahili culture on the Spice Island",
		Activities: []string{"Spice Tours", "Stone Town Exploration", "Dhow Sailing", "Snorkeling"},
		Budget:     "$700 - $1,500",
		Duration:   "4-7 days",
		BestTime:   "June - October, December - February",
		Highlights: []string{"UNESCO Stone Town", "Pristine beaches", "Spice plantations"},
		Difficulty: "Easy",
		GroupSize:  "2-12 people",
	},
}
