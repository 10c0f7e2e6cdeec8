package naming

import (
	"fmt"
	"time"
)

// podTimestampLayout renders month, day, hour and minute, e.g. "0314-0915".
const podTimestampLayout = "0102-1504"

// Pod returns the pod name for a deployment started at t.
func Pod(prefix string, t time.Time) string {
	return fmt.Sprintf("%s-%s", prefix, t.Format(podTimestampLayout))
}

// ProxyHost returns the proxy host name that forwards to port on the pod.
func ProxyHost(podID string, port int, domain string) string {
	return fmt.Sprintf("%s-%d.%s", podID, port, domain)
}

// AccessURL returns the HTTPS root URL of the pod's exposed port.
func AccessURL(podID string, port int, domain string) string {
	return fmt.Sprintf("https://%s/", ProxyHost(podID, port, domain))
}

// StreamURL returns the WebSocket URL of path on the pod's exposed port.
func StreamURL(podID string, port int, domain, path string) string {
	return fmt.Sprintf("wss://%s%s", ProxyHost(podID, port, domain), path)
}

// PortSpec returns the port declaration understood by the provisioning API.
func PortSpec(port int, protocol string) string {
	return fmt.Sprintf("%d/%s", port, protocol)
}
