package utils_test

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dwahdany/git-migration/internal/utils"
)

func TestFlushingWriterFlushesBufferedWriters(testInstance *testing.T) {
	underlyingBuffer := &bytes.Buffer{}
	bufferedWriter := bufio.NewWriterSize(underlyingBuffer, 1024)

	flushingWriter := utils.NewFlushingWriter(bufferedWriter)
	bytesWritten, writeError := flushingWriter.Write([]byte("Processing /tmp/projects/alpha...\n"))
	require.NoError(testInstance, writeError)
	require.Equal(testInstance, 34, bytesWritten)
	require.Equal(testInstance, "Processing /tmp/projects/alpha...\n", underlyingBuffer.String())
}

func TestFlushingWriterPassesThroughPlainWriters(testInstance *testing.T) {
	plainBuffer := &bytes.Buffer{}
	flushingWriter := utils.NewFlushingWriter(plainBuffer)

	_, writeError := flushingWriter.Write([]byte("inventory"))
	require.NoError(testInstance, writeError)
	require.Equal(testInstance, "inventory", plainBuffer.String())
}

func TestNewFlushingWriterAvoidsDoubleWrapping(testInstance *testing.T) {
	plainBuffer := &bytes.Buffer{}
	wrappedOnce := utils.NewFlushingWriter(plainBuffer)
	wrappedTwice := utils.NewFlushingWriter(wrappedOnce)
	require.Same(testInstance, wrappedOnce, wrappedTwice)
}

func TestNewFlushingWriterToleratesNilWriter(testInstance *testing.T) {
	require.Nil(testInstance, utils.NewFlushingWriter(nil))
}
