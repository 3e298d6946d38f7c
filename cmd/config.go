package cmd

import "time"

type Config struct {
	HTTPPort              string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	JWTSecret             string
	JWTTTL                time.Duration
	OperatorAPIKey        string
	FCMProjectID          string
	FCMAccessToken        string
	NotificationQueueSize int
	RenotifyStaleAfter    time.Duration
	RenotifySchedule      string
}
