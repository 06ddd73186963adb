// SPDX-License-Identifier: EPL-2.0

// Package scan finds raw capture files below a directory.
//
// The walk is lazy and single-use: Files returns an iter.Seq2 that performs
// the walk while it is being ranged over.
//
//	for path, err := range scan.Files("/data/logger", ".RAW") {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(path)
//	}
//
// Matching is a case-sensitive suffix test on the file name, so ".RAW" does
// not match "rec.raw". Files are visited in lexical order within each
// directory, as fs.WalkDir does.
package scan
