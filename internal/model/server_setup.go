package model

// Protocols a server setup can describe.
const (
	ProtocolSMTP = "smtp"
	ProtocolIMAP = "imap"
	ProtocolPOP3 = "pop3"
)

// ServerSetup describes one protocol listener of the underlying mail service,
// as reported by the configuration endpoint.
type ServerSetup struct {
	Protocol string `json:"protocol" yaml:"protocol"`
	Hostname string `json:"hostname" yaml:"hostname"`
	Port     int    `json:"port" yaml:"port"`
}
