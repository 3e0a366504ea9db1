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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with
// Errorf(), in the same way as fmt.Errorf(). The difference is that the
// pattern string is retained and can be tested for with the Is() and Has()
// functions.
//
//	const NotFound = "image not found: %v"
//
//	err := curated.Errorf(NotFound, path)
//	if curated.Is(err, NotFound) {
//		...
//	}
//
// Has() will search the entire chain of curated errors for the pattern. Is()
// will only test the outermost error.
//
// The Error() function normalises the error message by removing duplicate
// adjacent parts of the chain. For example "loader: loader: file not found"
// becomes "loader: file not found".
package curated
