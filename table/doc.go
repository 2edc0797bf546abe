/*
Package table compiles a grammar.RuleSet into a ParsingTable: the
characteristic finite state machine (CFSM) over LR(0) items, plus the
shift/reduce/goto actions package parsing drives during a parse.

Unlike a classical LR(1) table, conflicts are not resolved at build time
— a cell may hold more than one Action, and HasConflicts reports whether
that happened anywhere in the table. Local ambiguity between conflicting
actions is resolved at parse time, per configuration, by package parsing.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package table

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("tokema.table")
}
