package net

import (
	"log"
	"net"
	"strconv"
)

// GetOutgoingIP finds the preferred local IP address to share with other
// devices.
func GetOutgoingIP() (string, error) {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		// No route out; look at the interfaces instead.
		return getLocalIPFallback()
	}
	defer conn.Close()

	localAddr := conn.LocalAddr().(*net.UDPAddr)
	return localAddr.IP.String(), nil
}

func getLocalIPFallback() (string, error) {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "", err
	}
	for _, address := range addrs {
		if ipnet, ok := address.(*net.IPNet); ok && !ipnet.IP.IsLoopback() {
			if ipnet.IP.To4() != nil {
				return ipnet.IP.String(), nil
			}
		}
	}
	log.Println("[WEB] no suitable local IP found, using loopback")
	return "127.0.0.1", nil
}

// ShareURL returns the address other devices should open for a server
// listening on listen, such as ":8888" or "0.0.0.0:8888".
func ShareURL(listen string) (string, int, error) {
	host, portStr, err := net.SplitHostPort(listen)
	if err != nil {
		return "", 0, err
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return "", 0, err
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		if host, err = GetOutgoingIP(); err != nil {
			return "", 0, err
		}
	}
	return "http://" + net.JoinHostPort(host, portStr) + "/", port, nil
}
