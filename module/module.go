// Package module binds the messages and queries of each chain module to
// the dispatch layer. Façades hold nothing but the Runner they dispatch
// to, so any number of them can share one simulator.
package module

import (
	"github.com/okx/testtube/account"
	"github.com/okx/testtube/runner"
)

// execute and query keep the façade bindings to one line each.
func execute[R, M any](r runner.Runner, typeURL string, msg M, signer *account.SigningAccount) (*runner.ExecuteResponse[R], error) {
	return runner.Execute[R](r, msg, typeURL, signer)
}

func query[R, Q any](r runner.Runner, path string, req *Q) (*R, error) {
	return runner.Query[R](r, path, req)
}
