// This file is part of GopherAdvance.
//
// GopherAdvance is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherAdvance is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherAdvance.  If not, see <https://www.gnu.org/licenses/>.

package regression

import (
	"fmt"
	"io"

	"github.com/gopheradvance/gopheradvance/curated"
	"golang.org/x/sync/errgroup"
)

// Result of running a single entry.
type Result struct {
	Entry  Entry
	Digest string
	Err    error
}

// Pass is true if the entry ran without error and the digest matched.
func (res Result) Pass() bool {
	return res.Err == nil && res.Digest == res.Entry.Digest
}

// Generate runs the entry and returns a copy of it with the Digest field
// filled in. Use this when adding an entry to the database.
func Generate(ent Entry) (Entry, error) {
	dig, err := ent.regress()
	if err != nil {
		return ent, curated.Errorf("regression: %s: %v", ent.Name, err)
	}
	ent.Digest = dig
	return ent, nil
}

// Run every entry, at most parallel entries at a time. A parallel value of
// zero or less means there is no limit. Results are returned in the same
// order as the entries.
//
// A summary of each entry is written to output as it completes.
func Run(output io.Writer, entries []Entry, parallel int) ([]Result, error) {
	if output == nil {
		output = io.Discard
	}

	results := make([]Result, len(entries))

	var g errgroup.Group
	if parallel > 0 {
		g.SetLimit(parallel)
	}

	for i, ent := range entries {
		g.Go(func() error {
			dig, err := ent.regress()
			results[i] = Result{Entry: ent, Digest: dig, Err: err}
			return nil
		})
	}

	// entries never return an error to the group. failures are recorded in
	// the results
	_ = g.Wait()

	numSucceed := 0
	numFail := 0
	numError := 0

	for _, res := range results {
		switch {
		case res.Err != nil:
			numError++
			fmt.Fprintf(output, "error: %s: %v\n", res.Entry, res.Err)
		case res.Pass():
			numSucceed++
			fmt.Fprintf(output, "succeed: %s\n", res.Entry)
		default:
			numFail++
			fmt.Fprintf(output, "fail: %s\n", res.Entry)
		}
	}

	fmt.Fprintf(output, "regression tests: %d succeed, %d fail", numSucceed, numFail)
	if numError > 0 {
		fmt.Fprintf(output, " [with %d errors]", numError)
	}
	fmt.Fprintln(output)

	if numFail > 0 || numError > 0 {
		return results, curated.Errorf("regression: %d entries did not pass", numFail+numError)
	}

	return results, nil
}
