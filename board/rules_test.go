package board

import (
	"errors"
	"testing"

	"github.com/daystram/chessboard/position"
)

func TestEnPassant(t *testing.T) {
	t.Parallel()

	setup := func(t *testing.T) *Board {
		b := NewBoard()
		play(t, b, "a2", "a3")
		play(t, b, "d7", "d5")
		play(t, b, "a3", "a4")
		play(t, b, "d5", "d4")
		play(t, b, "e2", "e4")
		if file, ok := b.EnPassantFile(); !ok || file != 4 {
			t.Fatalf("unexpected en passant file: got=%d,%v want=%d,%v", file, ok, 4, true)
		}
		return b
	}

	t.Run("capture behind the pawn", func(t *testing.T) {
		t.Parallel()
		b := setup(t)
		if !contains(b.ValidMoves(mustAt(t, b, "d4")), sq("e3")) {
			t.Fatalf("unexpected en passant not offered: got=%v", b.ValidMoves(mustAt(t, b, "d4")))
		}
		play(t, b, "d4", "e3")
		if _, ok := b.At(sq("e4")); ok {
			t.Error("unexpected passed pawn left on e4")
		}
		if p := mustAt(t, b, "e3"); p.Kind != KindPawn || p.Side != SideBlack {
			t.Errorf("unexpected capturing piece: got=%s", p)
		}
		if b.Len() != 31 {
			t.Errorf("unexpected piece count: got=%d want=%d", b.Len(), 31)
		}
		if _, ok := b.EnPassantFile(); ok {
			t.Error("unexpected en passant file after capture")
		}
		assertConsistent(t, b)
	})

	t.Run("expires after one move", func(t *testing.T) {
		t.Parallel()
		b := setup(t)
		play(t, b, "h7", "h6")
		if _, ok := b.EnPassantFile(); ok {
			t.Error("unexpected en passant file after an unrelated move")
		}
		play(t, b, "a4", "a5")
		if contains(b.ValidMoves(mustAt(t, b, "d4")), sq("e3")) {
			t.Errorf("unexpected stale en passant: got=%v", b.ValidMoves(mustAt(t, b, "d4")))
		}
	})

	t.Run("only from the fifth rank", func(t *testing.T) {
		t.Parallel()
		b := NewBoard(WithPieces(
			NewPiece(KindKing, SideWhite, sq("a1")),
			NewPiece(KindKing, SideBlack, sq("h8")),
			moved(NewPiece(KindPawn, SideWhite, sq("d4"))),
			NewPiece(KindPawn, SideBlack, sq("e7")),
		), WithOnMove(SideBlack))
		play(t, b, "e7", "e5")
		if got := b.ValidMoves(mustAt(t, b, "d4")); !sameSquares(got, squares("d5", "e5")) {
			t.Errorf("unexpected moves: got=%v want=%v", got, squares("d5", "e5"))
		}
	})

	t.Run("from an explicit en passant option", func(t *testing.T) {
		t.Parallel()
		b := NewBoard(WithPieces(
			NewPiece(KindKing, SideWhite, sq("a1")),
			NewPiece(KindKing, SideBlack, sq("h8")),
			moved(NewPiece(KindPawn, SideWhite, sq("b4"))),
			moved(NewPiece(KindPawn, SideBlack, sq("a4"))),
			moved(NewPiece(KindPawn, SideBlack, sq("c4"))),
		), WithOnMove(SideBlack), WithEnPassantFile(1))
		for _, n := range []string{"a4", "c4"} {
			if !contains(b.ValidMoves(mustAt(t, b, n)), sq("b3")) {
				t.Errorf("unexpected en passant not offered from %s: got=%v", n, b.ValidMoves(mustAt(t, b, n)))
			}
		}
	})
}

// En passant destinations skip the king safety filter, so a capture that opens
// the rank to the king is still offered.
func TestEnPassantSkipsKingSafety(t *testing.T) {
	t.Parallel()
	b := NewBoard(WithPieces(
		moved(NewPiece(KindKing, SideWhite, sq("a5"))),
		moved(NewPiece(KindPawn, SideWhite, sq("b5"))),
		NewPiece(KindPawn, SideBlack, sq("c7")),
		NewPiece(KindRook, SideBlack, sq("h5")),
		NewPiece(KindKing, SideBlack, sq("h8")),
	), WithOnMove(SideBlack))
	play(t, b, "c7", "c5")

	got := b.ValidMoves(mustAt(t, b, "b5"))
	if want := squares("b6", "c6"); !sameSquares(got, want) {
		t.Fatalf("unexpected moves: got=%v want=%v", got, want)
	}
	b.MovePiece(sq("b5"), sq("c6"))
	if !b.IsChecked(mustAt(t, b, "a5")) {
		t.Error("unexpected king safe after the rank opened")
	}
}

func TestCastling(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		remove    []string
		place     []Piece
		king      position.Pos
		wantOffer bool
		wantRook  [2]string // rook origin, destination
	}{
		{
			name:      "queen side",
			remove:    []string{"b1", "c1"},
			king:      sq("b1"),
			wantOffer: true,
			wantRook:  [2]string{"a1", "c1"},
		},
		{
			name:      "king side",
			remove:    []string{"e1", "f1", "g1"},
			king:      sq("f1"),
			wantOffer: true,
			wantRook:  [2]string{"h1", "e1"},
		},
		{
			name:   "path blocked",
			remove: []string{"c1"},
			king:   sq("b1"),
		},
		{
			name:   "knight between king and rook",
			remove: []string{"e1", "f1"},
			king:   sq("f1"),
		},
		{
			name:   "king in check",
			remove: []string{"b1", "c1", "d2"},
			place:  []Piece{NewPiece(KindRook, SideBlack, sq("d5"))},
			king:   sq("b1"),
		},
		{
			name:   "passing square attacked",
			remove: []string{"b1", "c1", "c2"},
			place:  []Piece{NewPiece(KindRook, SideBlack, sq("c5"))},
			king:   sq("b1"),
		},
		{
			name:   "landing square attacked",
			remove: []string{"b1", "c1", "b2"},
			place:  []Piece{NewPiece(KindRook, SideBlack, sq("b5"))},
			king:   sq("b1"),
		},
		{
			name:   "rook has moved",
			remove: []string{"b1", "c1"},
			place:  []Piece{moved(NewPiece(KindRook, SideWhite, sq("a1")))},
			king:   sq("b1"),
		},
		{
			name:   "king has moved",
			remove: []string{"b1", "c1"},
			place:  []Piece{moved(NewPiece(KindKing, SideWhite, sq("d1")))},
			king:   sq("b1"),
		},
		{
			name:   "opponent rook",
			remove: []string{"b1", "c1", "a1"},
			place:  []Piece{NewPiece(KindRook, SideBlack, sq("a1"))},
			king:   sq("b1"),
		},
		{
			// the first piece past the landing square decides, wherever it stands
			name:      "rook off its home square",
			remove:    []string{"e1", "f1", "g1", "h1"},
			place:     []Piece{NewPiece(KindRook, SideWhite, sq("g1"))},
			king:      sq("f1"),
			wantOffer: true,
			wantRook:  [2]string{"g1", "e1"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := NewBoard()
			for _, n := range tt.remove {
				b.Remove(sq(n))
			}
			for _, p := range tt.place {
				b.Place(p)
			}
			king := mustAt(t, b, "d1")
			got := contains(b.ValidMoves(king), tt.king)
			if got != tt.wantOffer {
				t.Fatalf("unexpected castling offer to %s: got=%v want=%v moves=%v\n%s", tt.king, got, tt.wantOffer, b.ValidMoves(king), b.Dump())
			}
			if !tt.wantOffer {
				return
			}

			before := b.Len()
			b.MovePiece(king.Pos, tt.king)
			if k := mustAt(t, b, tt.king.Notation()); k.Kind != KindKing || !k.Moved {
				t.Errorf("unexpected piece on %s: got=%s moved=%v", tt.king, k, k.Moved)
			}
			if _, ok := b.At(sq(tt.wantRook[0])); ok {
				t.Errorf("unexpected piece left on %s", tt.wantRook[0])
			}
			if r := mustAt(t, b, tt.wantRook[1]); r.Kind != KindRook || r.Side != SideWhite || !r.Moved {
				t.Errorf("unexpected piece on %s: got=%s moved=%v", tt.wantRook[1], r, r.Moved)
			}
			if b.Len() != before {
				t.Errorf("unexpected piece count: got=%d want=%d", b.Len(), before)
			}
			assertConsistent(t, b)
		})
	}
}

func TestCastlingBlack(t *testing.T) {
	t.Parallel()
	b := NewBoard(WithPieces(
		NewPiece(KindKing, SideBlack, sq("d8")),
		NewPiece(KindRook, SideBlack, sq("a8")),
		NewPiece(KindRook, SideBlack, sq("h8")),
		NewPiece(KindKing, SideWhite, sq("d1")),
	), WithOnMove(SideBlack))

	got := b.ValidMoves(mustAt(t, b, "d8"))
	for _, n := range []string{"b8", "f8"} {
		if !contains(got, sq(n)) {
			t.Errorf("unexpected castling to %s not offered: got=%v", n, got)
		}
	}
	play(t, b, "d8", "f8")
	if r := mustAt(t, b, "e8"); r.Kind != KindRook {
		t.Errorf("unexpected piece on e8: got=%s", r)
	}
	if k := mustAt(t, b, "f8"); !k.Moved {
		t.Errorf("unexpected unmoved king after castling: got=%s", k)
	}
}

func TestCheckmate(t *testing.T) {
	t.Parallel()

	t.Run("scholar's mate", func(t *testing.T) {
		t.Parallel()
		b := NewBoard()
		for _, mv := range [][2]string{
			{"d2", "d4"}, {"d7", "d5"},
			{"c1", "f4"}, {"g8", "f6"},
			{"e1", "a5"}, {"b8", "c6"},
			{"a5", "c7"},
		} {
			play(t, b, mv[0], mv[1])
		}
		if !b.IsChecked(mustAt(t, b, "d8")) {
			t.Error("unexpected black king not in check")
		}
		if b.HasMoves(SideBlack) {
			t.Errorf("unexpected black moves\n%s", b.Dump())
		}
		if !b.HasMoves(SideWhite) {
			t.Error("unexpected white without moves")
		}
	})

	t.Run("back rank", func(t *testing.T) {
		t.Parallel()
		b := NewBoard(WithPieces(
			moved(NewPiece(KindKing, SideWhite, sq("a1"))),
			NewPiece(KindRook, SideWhite, sq("a8")),
			moved(NewPiece(KindKing, SideBlack, sq("g8"))),
			NewPiece(KindPawn, SideBlack, sq("f7")),
			NewPiece(KindPawn, SideBlack, sq("g7")),
			NewPiece(KindPawn, SideBlack, sq("h7")),
		), WithOnMove(SideBlack))
		if !b.IsChecked(mustAt(t, b, "g8")) {
			t.Error("unexpected black king not in check")
		}
		if b.HasMoves(SideBlack) {
			t.Errorf("unexpected black moves\n%s", b.Dump())
		}
	})
}

func TestStalemate(t *testing.T) {
	t.Parallel()
	b := NewBoard(WithPieces(
		moved(NewPiece(KindKing, SideBlack, sq("a8"))),
		moved(NewPiece(KindPawn, SideBlack, sq("h5"))),
		NewPiece(KindQueen, SideWhite, sq("b6")),
		moved(NewPiece(KindKing, SideWhite, sq("c1"))),
		moved(NewPiece(KindPawn, SideWhite, sq("h4"))),
	), WithOnMove(SideBlack))

	if b.IsChecked(mustAt(t, b, "a8")) {
		t.Error("unexpected black king in check")
	}
	if got := b.ValidMoves(mustAt(t, b, "h5")); len(got) != 0 {
		t.Errorf("unexpected pawn moves: got=%v", got)
	}
	if b.HasMoves(SideBlack) {
		t.Errorf("unexpected black moves\n%s", b.Dump())
	}
}

func TestPromotion(t *testing.T) {
	t.Parallel()
	b := NewBoard(WithPieces(
		moved(NewPiece(KindPawn, SideWhite, sq("e7"))),
		NewPiece(KindKing, SideWhite, sq("a1")),
		NewPiece(KindKing, SideBlack, sq("h8")),
	))
	if _, ok := b.PromotionSquare(); ok {
		t.Fatal("unexpected promotion before the pawn arrives")
	}
	play(t, b, "e7", "e8")

	pos, ok := b.PromotionSquare()
	if !ok || pos != sq("e8") {
		t.Fatalf("unexpected promotion square: got=%s,%v want=%s,%v", pos, ok, "e8", true)
	}
	pawn, ok := b.TakePromotion()
	if !ok || pawn.Kind != KindPawn || pawn.Side != SideWhite {
		t.Fatalf("unexpected promoting piece: got=%s,%v", pawn, ok)
	}
	if _, ok := b.At(sq("e8")); ok {
		t.Fatal("unexpected pawn left on e8")
	}

	tests := []struct {
		name    string
		pos     position.Pos
		kind    Kind
		wantErr error
	}{
		{name: "king", pos: sq("e8"), kind: KindKing, wantErr: ErrInvalidPromotion},
		{name: "pawn", pos: sq("e8"), kind: KindPawn, wantErr: ErrInvalidPromotion},
		{name: "off board", pos: position.New(4, 8), kind: KindQueen, wantErr: ErrOutOfBounds},
		{name: "occupied", pos: sq("a1"), kind: KindQueen, wantErr: ErrSquareOccupied},
		{name: "queen", pos: sq("e8"), kind: KindQueen},
	}
	for _, tt := range tests {
		err := b.Promote(tt.pos, pawn.Side, tt.kind)
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("%s: unexpected error: got=%v want=%v", tt.name, err, tt.wantErr)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
	}

	q := mustAt(t, b, "e8")
	if q.Kind != KindQueen || q.Side != SideWhite || q.Moved {
		t.Errorf("unexpected promoted piece: got=%s moved=%v", q, q.Moved)
	}
	if !b.IsChecked(mustAt(t, b, "h8")) {
		t.Error("unexpected black king safe from the new queen")
	}
}
