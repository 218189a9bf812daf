// Package rosette provides an HTTP client for the Rosette syntax
// dependencies API.
//
// # Overview
//
// The service tokenizes the submitted text (or the document behind a URI),
// splits it into sentences, and returns one labeled dependency tree per
// sentence. This package sends that request and converts the answer into a
// [deptree.Parse].
//
// # Usage
//
//	client := rosette.NewClient(key, rosette.DefaultBaseURL, 30*time.Second)
//
//	parse, err := client.SyntaxDependencies(ctx, rosette.Request{
//	    Content:  "Let's make a graph.",
//	    Language: "eng", // optional
//	})
//	if err != nil {
//	    return err
//	}
//
// # Wire Format
//
// The client POSTs to {baseURL}/syntax/dependencies with the API key in the
// X-RosetteAPI-Key header and a body of {"content": ...} or
// {"contentUri": ...}. The response carries a flat "tokens" array and a
// "sentences" array whose entries name their inclusive token range and list
// dependencies by document-level token index. A governor index of -1 marks
// the sentence root.
//
// Content URIs are percent-escaped before sending, since the service may
// reject raw non-Latin characters.
//
// [deptree.Parse]: github.com/matzehuels/deptree/pkg/deptree.Parse
package rosette
