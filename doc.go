// SPDX-License-Identifier: EPL-2.0

// Package hydrowav converts the raw captures of a hydrophone data logger
// into playable WAV files.
//
// The logger writes RECORD.*.RAW files that hold nothing but interleaved
// little-endian PCM samples. Conversion wraps those bytes, unchanged, in a
// canonical RIFF/WAVE header describing the format they were recorded in.
//
// # Quick Start
//
// Convert every capture under a directory into "<root>/Converted Files":
//
//	sum, err := hydrowav.ConvertAll(hydrowav.DefaultConfig("/data/logger"))
//	if err != nil {
//	    // the output directory could not be created or the tree not scanned
//	}
//	fmt.Println(sum.Converted, "converted,", sum.Failed, "failed")
//
// Each file produces one line on Config.Log:
//
//	Converted /data/logger/day1/RECORD.0.RAW to /data/logger/Converted Files/RECORD.0.wav
//	Error converting /data/logger/day1/RECORD.1.RAW: open ...: permission denied
//
// # Single Files
//
// Convert handles one file and reports through a Result instead of an error:
//
//	res := hydrowav.Convert("RECORD.0.RAW", "RECORD.0.wav", pcm.LoggerFormat)
//	if !res.OK() {
//	    log.Println(res.Err)
//	}
//
// # Output Names
//
// Outputs keep the input's base name with a .wav extension and are written to
// one flat directory. Two captures with the same name in different
// subdirectories therefore map to the same output; the one processed last
// wins, a warning line is logged and Summary.Overwritten is incremented.
//
// # Format
//
// The sample format cannot be read from a raw capture. DefaultConfig uses
// pcm.LoggerFormat (mono, 16-bit, 44100 Hz); set Config.Format for loggers
// configured differently.
//
// See the formats/wav, pcm and scan subpackages for the building blocks.
package hydrowav
