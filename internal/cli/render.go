package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"cf_dns_manager/internal/dnstypes"
)

// renderRecords prints the snapshot as an aligned table.
func (a *App) renderRecords(records []dnstypes.DNSRecord) {
	fmt.Fprintf(a.out, "\nDNS Records for %s\n", a.zone.Domain)

	w := tabwriter.NewWriter(a.out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tType\tName\tContent\tTTL\tPriority\tProxy")
	for _, r := range records {
		priority := "N/A"
		if r.Priority != nil {
			priority = strconv.Itoa(*r.Priority)
		}
		proxy := "Off"
		if r.Proxied {
			proxy = "On"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			r.ID, r.Type, r.Name, r.Content, r.TTL, priority, proxy)
	}
	w.Flush()
}
