// Package settings holds the per-world knobs that change how a
// requirement tree is interpreted: the allowed Difficulty tier (Unsafe
// being the most permissive) and the set of enabled Tricks.
//
// Grounded on the original util.rs Difficulty/Trick enums; header and
// preset processing (the logic-file layer that produces settings from
// user input) is explicitly out of scope here, so Settings is a plain
// struct built with functional options rather than by a parser. It has
// no spawn or goal fields, and the hard-mode flag lives on player.Player.
package settings
