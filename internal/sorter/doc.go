// Package sorter holds the sort engines and the action vocabulary they emit.
//
// An engine runs to completion synchronously. It never draws or waits; it
// mutates the sequence and hands an [Action] to a [Recorder] at each step.
// Consumers replay the recorded actions later:
//
//	var trace []sorter.Action
//	ok := sorter.InsertionSort(seq, func(a sorter.Action) { trace = append(trace, a) })
//
// Engines are looked up by name with [Lookup].
package sorter
