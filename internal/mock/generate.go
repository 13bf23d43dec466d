// Package mock contains gomock implementations of the application ports.
package mock

//go:generate mockgen -destination=mock_infrastructure.go -package=mock golang-netshare/internal/port CommandRunner,OSVersionProvider
//go:generate mockgen -destination=mock_network.go -package=mock golang-netshare/internal/port NetworkConfigurationManager
