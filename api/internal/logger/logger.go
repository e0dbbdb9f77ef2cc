package logger

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strconv"

	"qrisgw/api/internal/config"

	"github.com/golang-cz/devslog"
	"github.com/google/uuid"
)

type Logger struct{}

func Init(config *config.Config) Logger {
	slogOpts := &slog.HandlerOptions{}

	if !config.Prod_env {
		slogOpts.Level = slog.LevelDebug
	}

	// new logger with options
	opts := &devslog.Options{
		HandlerOptions:    slogOpts,
		MaxSlicePrintSize: 4,
		SortKeys:          true,
		NewLineAfterLog:   true,
	}

	logger := slog.New(devslog.NewHandler(os.Stdout, opts))

	slog.SetDefault(logger)

	return Logger{}
}

// example Info("feed queried", LS_UPSTREAM, false, "records", "12")
func (l Logger) Info(message string, logStream Logstream, isTemplate bool, args ...any) {
	printLog(LL_INFO, message, logStream, caller(isTemplate), args...)
}

// example Error("feed query failed", LS_UPSTREAM, false, "error", "timeout")
func (l Logger) Error(message string, logStream Logstream, isTemplate bool, args ...any) {
	printLog(LL_ERROR, message, logStream, caller(isTemplate), args...)
}

func (l Logger) Fatal(message string, logStream Logstream, isTemplate bool, args ...any) {
	printLog(LL_FATAL, message, logStream, caller(isTemplate), args...)
}

func (l Logger) Debug(message string, args ...any) {
	_, file, line, _ := runtime.Caller(1)
	args = append(args, "source", file+":"+strconv.Itoa(line))
	slog.Debug(message, args...)
}

// templated helper methods are one frame deeper than direct calls
func caller(isTemplate bool) string {
	var skip int
	if isTemplate {
		skip = 3
	} else {
		skip = 2
	}

	_, file, line, _ := runtime.Caller(skip)
	return file + ":" + strconv.Itoa(line)
}

func printLog(ll LogLevel, message string, logStream Logstream, source string, args ...any) {
	args = append(args, "stream", logStream.ToString(), "source", source)
	switch ll {
	case LL_ERROR, LL_FATAL:
		slog.Error(message, args...)
	case LL_INFO:
		slog.Info(message, args...)
	case LL_DEBUG:
		slog.Debug(message, args...)
	}
}

func AnyToStr(t any) string {
	return fmt.Sprintf("%v", t)
}

func GenErrorId() string {
	var errorId string
	uuid, err := uuid.NewRandom()
	if err != nil {
		errorId = NA
	} else {
		errorId = uuid.String()
	}
	return errorId
}
