package hashing

import (
	"math/rand/v2"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// zobristSeed fixes the key table so hashes are stable across runs.
const zobristSeed = 0x7a6f62726973

type zobristTable struct {
	pieces      [2][7][chess.BoardSize][chess.BoardSize]uint64 // [colour][kind][file][rank]
	blackToMove uint64
	kingMoved   [2]uint64
	rookMoved   [2][2]uint64 // [colour][side]
	epFile      [chess.BoardSize]uint64
}

var zobrist = newZobristTable(zobristSeed)

func newZobristTable(seed uint64) *zobristTable {
	r := rand.New(rand.NewPCG(seed, seed>>1))
	z := &zobristTable{}
	for c := range z.pieces {
		for k := range z.pieces[c] {
			for f := range z.pieces[c][k] {
				for rk := range z.pieces[c][k][f] {
					z.pieces[c][k][f][rk] = r.Uint64()
				}
			}
		}
	}
	z.blackToMove = r.Uint64()
	for c := 0; c < 2; c++ {
		z.kingMoved[c] = r.Uint64()
		z.rookMoved[c][chess.QueenSide] = r.Uint64()
		z.rookMoved[c][chess.KingSide] = r.Uint64()
	}
	for f := range z.epFile {
		z.epFile[f] = r.Uint64()
	}
	return z
}

// GenerateZobristHash hashes the piece placement, the side to move, the
// castling flags and the en passant file.
func GenerateZobristHash(board *chess.Board, toMove chess.Colour) uint64 {
	var h uint64
	for _, sq := range chess.AllSquares() {
		if p := board.Get(sq); !p.IsEmpty() {
			h ^= zobrist.pieces[p.Colour][p.Kind][sq.File][sq.Rank]
		}
	}
	if toMove == chess.Black {
		h ^= zobrist.blackToMove
	}
	for c := 0; c < 2; c++ {
		if board.Castling.KingMoved[c] {
			h ^= zobrist.kingMoved[c]
		}
		for side := 0; side < 2; side++ {
			if board.Castling.RookMoved[c][side] {
				h ^= zobrist.rookMoved[c][side]
			}
		}
	}
	if board.EnPassant {
		h ^= zobrist.epFile[board.EPTarget.File]
	}
	return h
}

// WeakHash is a cheap placement checksum used to confirm Zobrist matches.
func WeakHash(board *chess.Board) uint32 {
	var h uint32
	for _, sq := range chess.AllSquares() {
		p := board.Get(sq)
		if p.IsEmpty() {
			continue
		}
		v := uint32(p.Kind)
		if p.Colour == chess.Black {
			v += 8
		}
		h += v * uint32(sq.File*chess.BoardSize+sq.Rank+1)
	}
	return h
}
