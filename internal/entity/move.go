package entity

import "fmt"

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type Move struct {
	Symbol Symbol
	Position
}

func (that Move) String() string {
	return fmt.Sprintf("%s-%d-%d", that.Symbol, that.Row, that.Col)
}

// Recommendation is the move suggested for the player to move.
type Recommendation struct {
	Symbol string `json:"symbol"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Score  int    `json:"score"`
}

// Text - renders the recommendation the way the game server expects it.
func (that *Recommendation) Text() string {
	return fmt.Sprintf("Move:%s-%d-%d", that.Symbol, that.Row, that.Col)
}
