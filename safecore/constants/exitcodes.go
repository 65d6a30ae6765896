package constant

// ExitCodeContractViolation is the process exit code after a failed contract
// check terminates the process. Supervisors restart or alert on it.
const ExitCodeContractViolation = 3
