// Package io provides JSON import and export for dependency parses.
//
// # Overview
//
// The `deptree parse` command saves the service response in this format so
// that it can be re-rendered later with `deptree render` without another API
// call. The format mirrors [deptree.Parse] directly:
//
//	{
//	  "language": "eng",
//	  "sentences": [
//	    {
//	      "index": 0,
//	      "tokens": [{"index": 0, "text": "Dogs"}, {"index": 1, "text": "bark"}],
//	      "edges": [
//	        {"governor": -1, "dependent": 1, "relation": "root"},
//	        {"governor": 1, "dependent": 0, "relation": "nsubj"}
//	      ]
//	    }
//	  ]
//	}
//
// Token indices are document-level, exactly as the service reports them. A
// governor of -1 attaches the dependent to the sentence root.
//
// # Import
//
// Use [ImportJSON] to read a parse from a file path, or [ReadJSON] to read
// from any io.Reader. Both validate the decoded parse with
// [deptree.Parse.Validate]; malformed JSON and structural problems are
// reported as RESPONSE_FORMAT_ERROR.
//
// # Export
//
// Use [WriteJSON] to write a parse to any io.Writer. Writing followed by
// [ReadJSON] yields an equal parse.
//
// [deptree.Parse]: github.com/matzehuels/deptree/pkg/deptree.Parse
// [deptree.Parse.Validate]: github.com/matzehuels/deptree/pkg/deptree.Parse.Validate
package io
