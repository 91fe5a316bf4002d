package activestep

import (
	"iter"
	"log/slog"
	"slices"
)

// Codec converts between command sets and their string identifiers using a
// vocabulary.
type Codec struct {
	vocab  *Vocabulary
	policy EncodePolicy
	logger *slog.Logger
}

// NewCodec creates a codec bound to vocab. A nil vocab uses the default one.
func NewCodec(vocab *Vocabulary, opts ...func(*Codec)) *Codec {
	if vocab == nil {
		vocab = NewDefaultVocabulary()
	}
	c := &Codec{vocab: vocab, policy: EncodeSubsumed, logger: slog.New(slog.DiscardHandler)}
	for _, o := range opts {
		o(c)
	}
	return c
}

// WithEncodePolicy sets the policy used by Encode.
func WithEncodePolicy(p EncodePolicy) func(*Codec) {
	return func(c *Codec) { c.policy = p }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) func(*Codec) {
	return func(c *Codec) {
		if l != nil {
			c.logger = l
		}
	}
}

// Vocabulary returns the vocabulary the codec reads.
func (c *Codec) Vocabulary() *Vocabulary { return c.vocab }

// Policy returns the encode policy.
func (c *Codec) Policy() EncodePolicy { return c.policy }

// Decode returns the union of the values registered for names. It fails with
// *UnknownFlagError on the first name that is not registered.
func (c *Codec) Decode(names []string) (Commands, error) {
	var out Commands
	for _, n := range names {
		v, ok := c.vocab.Lookup(n)
		if !ok {
			c.logger.Debug("Unknown command flag.", "name", n)
			return 0, NewUnknownFlagError(n)
		}
		out |= v
	}
	c.logger.Debug("Decoded commands.", "names", names, "raw", out.String())
	return out, nil
}

// Encode yields the registered names contained in cmds, in registration
// order. The sequence reads the vocabulary each time it is ranged over.
func (c *Codec) Encode(cmds Commands) iter.Seq[string] {
	return func(yield func(string) bool) {
		flags := c.vocab.Flags()
		for _, f := range flags {
			if !cmds.Has(f.Value) {
				continue
			}
			if c.policy == EncodeMostSpecific && subsumedBySet(f, flags, cmds) {
				continue
			}
			if !yield(f.Name) {
				return
			}
		}
	}
}

// EncodeNames collects Encode into a slice. The empty set gives nil.
func (c *Codec) EncodeNames(cmds Commands) []string {
	names := slices.Collect(c.Encode(cmds))
	c.logger.Debug("Encoded commands.", "raw", cmds.String(), "names", names, "policy", c.policy.String())
	return names
}

// Contains reports whether every bit registered for name is set in cmds.
func (c *Codec) Contains(cmds Commands, name string) (bool, error) {
	v, ok := c.vocab.Lookup(name)
	if !ok {
		return false, NewUnknownFlagError(name)
	}
	return cmds.Has(v), nil
}

// subsumedBySet reports whether another flag that is fully set in cmds
// strictly covers f.
func subsumedBySet(f Flag, flags []Flag, cmds Commands) bool {
	for _, g := range flags {
		if g.Value != f.Value && g.Value.Has(f.Value) && cmds.Has(g.Value) {
			return true
		}
	}
	return false
}
