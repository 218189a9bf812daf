// Package integrations provides HTTP clients for remote analysis services.
//
// # Overview
//
// Each service has its own subpackage built on the shared [Client]:
//
//   - [rosette]: Rosette syntactic dependency analysis
//
// # Shared Infrastructure
//
// [Client] sends JSON requests with default headers and a bounded timeout.
// It does not retry; one failed call is final. Failures are reported with
// the codes from [errors]:
//
//   - REQUEST_ERROR for transport failures (connection refused, timeout, cancel)
//   - API_ERROR for non-2xx responses, with an [errors.APIError] cause
//   - RESPONSE_FORMAT_ERROR for bodies that do not decode
//
// Every request is reported to the hooks registered with
// [observability.SetHTTPHooks].
//
// [rosette]: github.com/matzehuels/deptree/pkg/integrations/rosette
// [errors]: github.com/matzehuels/deptree/pkg/errors
// [errors.APIError]: github.com/matzehuels/deptree/pkg/errors.APIError
// [observability.SetHTTPHooks]: github.com/matzehuels/deptree/pkg/observability.SetHTTPHooks
package integrations
