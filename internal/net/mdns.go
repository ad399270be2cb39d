package net

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/hashicorp/mdns"
)

const serviceType = "_drawpad._tcp"

// Peer is a DrawPad web server found on the local network.
type Peer struct {
	Name string
	Addr string
}

func (p Peer) URL() string {
	return "http://" + p.Addr + "/"
}

// Advertise announces a web server on port over mDNS until the returned
// server is shut down.
func Advertise(port int, title string) (*mdns.Server, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("could not get hostname: %w", err)
	}

	var ips []net.IP
	if ip, err := GetOutgoingIP(); err == nil {
		ips = append(ips, net.ParseIP(ip))
	}

	service, err := mdns.NewMDNSService(host, serviceType, "", "", port, ips, []string{title})
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS service: %w", err)
	}
	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return nil, fmt.Errorf("failed to start mDNS server: %w", err)
	}
	return server, nil
}

// Browse queries the network for timeout and calls found for every IPv4
// server that answers.
func Browse(timeout time.Duration, found func(Peer)) error {
	entries := make(chan *mdns.ServiceEntry, 8)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for e := range entries {
			if p, ok := peerFromEntry(e); ok {
				found(p)
			}
		}
	}()

	params := mdns.DefaultParams(serviceType)
	params.Entries = entries
	params.Timeout = timeout
	err := mdns.Query(params)
	close(entries)
	<-done
	return err
}

func peerFromEntry(e *mdns.ServiceEntry) (Peer, bool) {
	if e == nil || e.AddrV4 == nil || e.Port == 0 {
		return Peer{}, false
	}
	return Peer{
		Name: e.Name,
		Addr: fmt.Sprintf("%s:%d", e.AddrV4, e.Port),
	}, true
}
