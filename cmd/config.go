package cmd

type Config struct {
	HTTPPort      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSslMode     string
	ProfitRate    float64
	ShipperFee    float64
	RelaySchedule string
}
