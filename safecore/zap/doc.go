// Package zap adapts go.uber.org/zap to the safecore log.Logger interface.
//
// Install it as the contract report sink in services so violation records
// flow through the same structured pipeline (and OTel log bridge) as the
// rest of the application logs:
//
//	logger, _, err := zap.New(zap.Config{Environment: zap.EnvironmentProduction, OTelLibraryName: "ledger"})
//	if err != nil {
//		return err
//	}
//
//	checker := contract.New(contract.Config{Logger: logger})
package zap
