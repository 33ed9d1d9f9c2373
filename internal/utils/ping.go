package utils

import (
	"fmt"
	"net"
	"time"
)

// PingDatabase checks that a database server accepts TCP connections
func PingDatabase(host, port string) error {
	if port == "" {
		return fmt.Errorf("no port configured for database host %s", host)
	}
	return dial(net.JoinHostPort(host, port), 1500*time.Millisecond)
}

func dial(address string, timeout time.Duration) error {
	conn, err := net.DialTimeout("tcp", address, timeout)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", address, err)
	}
	defer conn.Close()

	return nil
}
