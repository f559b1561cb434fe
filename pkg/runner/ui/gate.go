package ui

import (
	"context"
	"fmt"

	"tableflip.dev/chessboard/pkg/swap"
	"tableflip.dev/chessboard/pkg/unit"
)

// swapGate asks about swaps on the status line. The first attempt is held
// back as pending; the answer key retries it with the decision preloaded.
type swapGate struct {
	pending *pendingSwap
	answer  *swap.Decision
}

type pendingSwap struct {
	src, tgt       int
	srcNum, tgtNum unit.Number
}

func (g *swapGate) ConfirmSwap(_ context.Context, src, tgt *unit.Unit) (swap.Decision, error) {
	if g.answer != nil {
		d := *g.answer
		g.answer = nil
		return d, nil
	}
	g.pending = &pendingSwap{src: src.ID, tgt: tgt.ID, srcNum: src.Number, tgtNum: tgt.Number}
	return swap.Decision{}, nil
}

func (g *swapGate) question() string {
	if g.pending == nil {
		return ""
	}
	return fmt.Sprintf("swap %s and %s? y yes, a yes and don't ask again, n no",
		g.pending.srcNum, g.pending.tgtNum)
}

// answerKey resolves the pending swap. It reports whether k was an answer.
func (d *UI) answerKey(k string) (bool, error) {
	p := d.gate.pending
	if p == nil {
		return false, nil
	}
	var dec swap.Decision
	switch k {
	case "y":
		dec = swap.Decision{OK: true}
	case "a":
		dec = swap.Decision{OK: true, DontAskAgain: true}
	case "n", "Esc":
		d.gate.pending = nil
		d.message = "swap cancelled"
		return true, nil
	default:
		return true, nil
	}
	d.gate.pending = nil
	d.gate.answer = &dec
	res, err := d.Session.Swap(d.ctx, p.src, p.tgt)
	d.gate.answer = nil
	if err != nil {
		return true, err
	}
	d.message = res.Entry.Message
	return true, nil
}
