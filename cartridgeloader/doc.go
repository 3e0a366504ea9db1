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

// Package cartridgeloader loads BIOS and game images. Images can be loaded
// from the local filesystem or over HTTP.
//
// The LoadBIOS() and LoadGame() functions check the size of the image and
// report the outcome as a Status value rather than an error. This is the form
// used by the hardware package, which does not return errors from its load
// functions.
package cartridgeloader
