package tapevm

const Theory = `
# Tape Machine Theory

A program is a byte stream. Eight bytes are instructions, everything else is
commentary and is dropped by the loader before anything else happens.

## Loading
1. Filter: keep > < + - . , [ ] in order, remember where each came from.
2. Pair: one left-to-right pass with a stack pairs every [ with its ].
   A ] with an empty stack rejects the program. A [ left on the stack at the
   end rejects it too, unless unclosed openers are allowed.
3. The pairs form a symmetric jump table. The program never changes again.

## Running
- State is a program counter, a tape cursor and the tape itself.
- The tape starts as a fixed number of zero cells. Stepping right onto the
  boundary appends zero cells: one initial-sized block (block policy) or as
  many cells as the tape already has (double policy).
- Stepping left from cell 0 stays at cell 0.
- Cells wrap modulo 256.
- [ jumps to its partner when the cell is zero, ] jumps to its partner when
  the cell is not. The counter then advances, so execution resumes after the
  partner.
- The machine halts when the counter passes the last instruction.

## Failure
Only the streams can fail at run time: input closing before a byte arrives,
or output refusing a byte. Both stop the run; the tape is left as it was.
`
