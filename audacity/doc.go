// Package audacity implements a client for Audacity's scripting interface
// (mod-script-pipe).
//
// Every scripting command Audacity understands is modeled as a small struct
// whose exported fields are the command's parameters. Commands are serialized
// to the textual request form the scripting module expects and written to
// Audacity's command pipe; the reply is read from the response pipe and parsed
// into a Response.
//
// Request format:
//
//	CommandName: Param1="Value1" Param2="Value2"\n
//
// Response format (one or more payload lines, then a status line):
//
//	<payload line>
//	...
//	BatchCommand finished: OK\n
//
// or, on failure:
//
//	BatchCommand finished: Failed!\n
//
// Example:
//
//	client, err := audacity.Dial()
//	if err != nil {
//		// Audacity not running, or mod-script-pipe not enabled.
//	}
//	defer client.Close()
//
//	resp, err := client.Do(ctx, &audacity.Chirp{
//		StartFreq: 440,
//		EndFreq:   880,
//		StartAmp:  0.8,
//		EndAmp:    0.1,
//		Waveform:  audacity.WaveformSine,
//	})
//
// Commands always apply to the most recently opened Audacity window; the
// scripting interface offers no way to address a particular window.
package audacity
