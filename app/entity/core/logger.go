package core

//go:generate mockgen -source=logger.go -destination=mock_logger.go -package=core

type Logger interface {
	Log(messageType string, message string)
	Flush()
}
