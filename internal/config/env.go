package config

const (
	defaultPort           = "4000"
	defaultRosterFile     = "team.csv"
	defaultVisitorLogFile = "userinfo.csv"
	defaultMetricsPort    = "9090"
	defaultServiceName    = "roster-service"
)
