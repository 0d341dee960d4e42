package interfaces

// LoggerInterface abstracts where the archivist writes its lines to. A
// single Println sink is all it takes, the stdlib *log.Logger fulfills
// it out of the box and is what the archivist defaults to.
type LoggerInterface interface {
	Println(v ...interface{})
}
