package api

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/mdns"
)

// ServiceType is the mDNS service listing servers advertise
const ServiceType = "_homeshowcase._tcp"

// DiscoveredServer represents a listing server found during discovery
type DiscoveredServer struct {
	// Base URL, e.g. "http://192.168.1.20:8000"
	URL string
	// Instance name from mDNS, or the host
	Name string
	// Listing address from the TXT record, if advertised
	Address string
	// How it was found: "mDNS" or "local"
	Source string
}

// DiscoverMDNS discovers listing servers on the local network using mDNS
func DiscoverMDNS(ctx context.Context, timeout time.Duration) ([]DiscoveredServer, error) {
	var servers []DiscoveredServer
	var mu sync.Mutex

	// Create a channel for mDNS entries
	entriesCh := make(chan *mdns.ServiceEntry, 10)
	done := make(chan struct{})

	// Start a goroutine to collect entries
	go func() {
		defer close(done)
		for entry := range entriesCh {
			server, ok := serverFromEntry(entry)
			if !ok {
				continue
			}
			mu.Lock()
			servers = append(servers, server)
			mu.Unlock()
		}
	}()

	params := mdns.DefaultParams(ServiceType)
	params.Entries = entriesCh
	params.Timeout = timeout
	params.DisableIPv6 = true

	err := mdns.Query(params)
	close(entriesCh)
	<-done

	mu.Lock()
	defer mu.Unlock()

	if err != nil {
		return servers, fmt.Errorf("mDNS query failed: %w", err)
	}

	return servers, nil
}

func serverFromEntry(entry *mdns.ServiceEntry) (DiscoveredServer, bool) {
	if entry == nil || entry.AddrV4 == nil || entry.Port == 0 {
		return DiscoveredServer{}, false
	}

	server := DiscoveredServer{
		URL:    "http://" + net.JoinHostPort(entry.AddrV4.String(), strconv.Itoa(entry.Port)),
		Name:   strings.TrimSuffix(strings.TrimSuffix(entry.Name, "."), "."+ServiceType+".local"),
		Source: "mDNS",
	}

	// Parse listing address from TXT records
	for _, txt := range entry.InfoFields {
		if strings.HasPrefix(txt, "address=") {
			server.Address = strings.TrimPrefix(txt, "address=")
		}
	}

	// Use hostname if no name
	if server.Name == "" && entry.Host != "" {
		server.Name = strings.TrimSuffix(entry.Host, ".")
	}

	return server, true
}

// DiscoverLocal checks whether a listing server runs on this machine
func DiscoverLocal(ctx context.Context, timeout time.Duration) ([]DiscoveredServer, error) {
	base, err := Probe(ctx, fmt.Sprintf("localhost:%d", DefaultPort), timeout)
	if err != nil {
		return nil, err
	}
	return []DiscoveredServer{{URL: base, Name: "localhost", Source: "local"}}, nil
}

// DiscoverAll runs mDNS and local discovery concurrently and combines the
// results
func DiscoverAll(ctx context.Context, timeout time.Duration) ([]DiscoveredServer, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		servers []DiscoveredServer
		err     error
	}

	results := make(chan result, 2)

	go func() {
		servers, err := DiscoverMDNS(ctx, timeout)
		results <- result{servers: servers, err: err}
	}()

	go func() {
		servers, err := DiscoverLocal(ctx, timeout)
		results <- result{servers: servers, err: err}
	}()

	// Collect results
	var all []DiscoveredServer
	seen := make(map[string]bool)
	var lastErr error
	received := 0

	for received < 2 {
		select {
		case r := <-results:
			received++
			if r.err != nil {
				lastErr = r.err
				continue
			}
			for _, s := range r.servers {
				if !seen[s.URL] {
					seen[s.URL] = true
					all = append(all, s)
				}
			}
		case <-ctx.Done():
			return all, ctx.Err()
		}
	}

	if len(all) == 0 && lastErr != nil {
		return nil, lastErr
	}

	return all, nil
}
