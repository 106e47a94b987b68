package segment

import (
	"context"
	"fmt"
	"unicode/utf8"

	pool "github.com/jolestar/go-commons-pool"
)

// NfaStateFn represents a state in a non-deterministic finite automata.
// Functions of type NfaStateFn try to match a rune (Unicode code-point).
// The first argument is the Recognizer which carries this state function.
//
// NfaStateFn – after matching a rune – must return another NfaStateFn,
// which will then in turn be called to process the next rune. The process
// of matching a string will stop as soon as a NfaStateFn returns nil.
// State functions signal the outcome by returning either DoAccept(…) or
// DoAbort(…).
type NfaStateFn func(*Recognizer, rune) NfaStateFn

// A Recognizer represents an automata to recognize sequences of runes
// (i.e. Unicode code-points). Its main functionality is performed by
// an embedded NfaStateFn. The first NfaStateFn to use is provided with
// the constructor.
//
// Semantics of UserData are up to the client and not used by
// the default mechanism.
type Recognizer struct {
	MatchLen int         // length of an accepted match in bytes
	UserData interface{} // clients may need to store additional information
	consumed int         // bytes consumed so far
	nextStep NfaStateFn  // next step of the automata
}

// NewRecognizer creates a new Recognizer.
// This is rarely used, as clients rather should call NewPooledRecognizer().
func NewRecognizer(next NfaStateFn) *Recognizer {
	return &Recognizer{nextStep: next}
}

// Recognizers are short-lived objects. To avoid multiple allocation of
// small objects we will pool them.
type recognizerPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalRecognizerPool *recognizerPool

func init() {
	globalRecognizerPool = &recognizerPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			rec := &Recognizer{}
			return rec, nil
		})
	globalRecognizerPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalRecognizerPool.opool = pool.NewObjectPool(globalRecognizerPool.ctx, factory, config)
}

// NewPooledRecognizer returns a new Recognizer, pre-filled with a
// state function. The Recognizer is pooled for efficiency; clients should
// call Release() when done with it.
func NewPooledRecognizer(stateFn NfaStateFn) *Recognizer {
	o, err := globalRecognizerPool.opool.BorrowObject(globalRecognizerPool.ctx)
	if err != nil {
		CT().Errorf("cannot borrow recognizer from pool: %v", err)
		return NewRecognizer(stateFn)
	}
	rec := o.(*Recognizer)
	rec.nextStep = stateFn
	return rec
}

// Release clears the Recognizer and puts it back into the pool.
func (rec *Recognizer) Release() {
	rec.MatchLen = 0
	rec.UserData = nil
	rec.consumed = 0
	rec.nextStep = nil
	_ = globalRecognizerPool.opool.ReturnObject(globalRecognizerPool.ctx, rec)
}

// Simple stringer for debugging purposes.
func (rec *Recognizer) String() string {
	if rec == nil {
		return "[nil rule]"
	}
	return fmt.Sprintf("[len=%d -> done=%v]", rec.MatchLen, rec.Done())
}

// Done is true if a Recognizer is done matching runes.
// If MatchLength() > 0 is has been accepting a sequence of runes,
// otherwise it has aborted to further try a match.
func (rec *Recognizer) Done() bool {
	return rec.nextStep == nil
}

// MatchLength returns the length of an accepted match in bytes, or 0.
func (rec *Recognizer) MatchLength() int {
	return rec.MatchLen
}

// RuneEvent lets the Recognizer process the next rune, which occupies size
// bytes of the input.
func (rec *Recognizer) RuneEvent(r rune, size int) {
	if rec.nextStep == nil {
		return
	}
	rec.consumed += size
	rec.nextStep = rec.nextStep(rec, r)
}

// --- Standard Recognizer Rules ----------------------------------------

// DoAbort returns a state function which signals abort.
func DoAbort(rec *Recognizer) NfaStateFn {
	rec.MatchLen = 0
	return nil
}

// DoAccept returns a state function which signals accept, spanning all the
// runes consumed so far (including the current one).
func DoAccept(rec *Recognizer) NfaStateFn {
	rec.MatchLen = rec.consumed
	return nil
}

// Recognize runs a pooled recognizer, starting with state function start, on
// the leading runes of s. It returns the length of the match in bytes, or 0
// if the recognizer aborted or ran out of input.
func Recognize(start NfaStateFn, s string) int {
	rec := NewPooledRecognizer(start)
	defer rec.Release()
	for i := 0; i < len(s) && !rec.Done(); {
		r, size := utf8.DecodeRuneInString(s[i:])
		rec.RuneEvent(r, size)
		i += size
	}
	if !rec.Done() {
		return 0
	}
	return rec.MatchLength()
}
