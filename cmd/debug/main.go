package main

import (
	"flag"
	"fmt"
	"log"

	"xiangqi/internal/server/game"
	"xiangqi/internal/xiangqi"
)

func main() {
	fen := flag.String("fen", game.StandardFEN, "position to inspect")
	flag.Parse()

	g, err := xiangqi.DecodeGame(*fen)
	if err != nil {
		log.Fatalf("decode: %v", err)
	}
	fmt.Println("FEN:", g.Encode())
	fmt.Println(g.TurnText())
	for _, pc := range g.Board().PiecesOf(g.ActiveColor()) {
		fmt.Printf("  %-24v %v\n", pc, g.LegalMoves(pc))
	}
	fmt.Println("Moves:", len(g.AllMoves()))
}
