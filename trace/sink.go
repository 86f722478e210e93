package trace

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/coruus/gokeccak/keccak"
)

// Tracer is a keccak.Hook that writes a human-readable trace of every
// sub-step of every round, plus a final-state block after each
// permutation, to an io.Writer. A Tracer is read-only with respect to
// the Permutation it observes: it only calls Bits().
//
// A write failure is logged via logrus and recorded in Err, but never
// returned to the permutation — tracing errors must not corrupt the
// digest.
type Tracer struct {
	W      io.Writer
	Format Format
	Err    error

	log *logrus.Entry
}

// NewTracer wraps w. format selects NISTFormat or ByteMajorFormat.
func NewTracer(w io.Writer, format Format) *Tracer {
	return &Tracer{W: w, Format: format, log: logrus.WithField("component", "trace")}
}

func stepLabel(step keccak.Step) string {
	return fmt.Sprintf("algorithm %d", int(step))
}

func (t *Tracer) writeSection(header string, p keccak.Permutation) {
	if t.Err != nil {
		return // a prior write already failed; stop spending cycles on more
	}
	if _, err := fmt.Fprintln(t.W, header); err != nil {
		t.fail(err)
		return
	}
	bits := p.Bits()
	w := p.Params().W
	for _, xy := range laneOrder() {
		x, y := xy[0], xy[1]
		lane := x + 5*y
		hexStr, err := laneHex(bits[lane*w:(lane+1)*w], t.Format)
		if err != nil {
			t.fail(err)
			return
		}
		if _, err := fmt.Fprintf(t.W, "(%d,%d): %s\n", x, y, hexStr); err != nil {
			t.fail(err)
			return
		}
	}
	if _, err := fmt.Fprintln(t.W); err != nil {
		t.fail(err)
	}
}

func (t *Tracer) fail(err error) {
	t.Err = err
	t.log.WithError(err).Warn("trace: write failed, digest computation continues unaffected")
}

func (t *Tracer) BeforeStep(round int, step keccak.Step, p keccak.Permutation) {
	t.writeSection(fmt.Sprintf("Round %d Before %s", round, stepLabel(step)), p)
}

func (t *Tracer) AfterStep(round int, step keccak.Step, p keccak.Permutation) {
	t.writeSection(fmt.Sprintf("Round %d After %s", round, stepLabel(step)), p)
}

func (t *Tracer) FinalState(p keccak.Permutation) {
	t.writeSection("Final state", p)
}

// Squeezing emits the "Squeezing output." marker before the sponge
// begins reading output blocks. sponge.State calls this through the
// SqueezeAnnouncer interface if its hook implements it.
func (t *Tracer) Squeezing() {
	if t.Err != nil {
		return
	}
	if _, err := fmt.Fprintln(t.W, "Squeezing output."); err != nil {
		t.fail(err)
	}
}
