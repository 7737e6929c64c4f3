package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"cf_dns_manager/internal/dns/providers/cloudflare"
	"cf_dns_manager/internal/dnstypes"
)

// ErrRecordNotFound is reported when the user names a record ID absent
// from the freshly fetched snapshot. It aborts the current action only.
var ErrRecordNotFound = errors.New("record ID not found")

// errInputClosed signals that interactive input ended (EOF or read
// error). It aborts the current action without submitting anything and
// makes the loop exit.
var errInputClosed = errors.New("input closed")

// RecordAPI is the slice of the Cloudflare provider the menu loop
// consumes. Tests inject a fake implementation.
type RecordAPI interface {
	ListRecords(ctx context.Context, zoneID string) ([]dnstypes.DNSRecord, error)
	CreateRecord(ctx context.Context, zoneID string, fields dnstypes.RecordFields) error
	UpdateRecord(ctx context.Context, zoneID, recordID string, fields dnstypes.RecordFields) error
	DeleteRecord(ctx context.Context, zoneID, recordID string) error
}

// App is the interactive menu loop for one resolved zone. All state
// beyond the zone is per-action: records are refetched at the start of
// every list/update/delete so the view always reflects the provider.
type App struct {
	zone cloudflare.Zone
	api  RecordAPI
	in   *bufio.Scanner
	out  io.Writer
	log  logrus.FieldLogger
}

// NewApp wires the menu loop to a resolved zone and an API client.
func NewApp(zone cloudflare.Zone, api RecordAPI, in io.Reader, out io.Writer, log logrus.FieldLogger) *App {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &App{
		zone: zone,
		api:  api,
		in:   bufio.NewScanner(in),
		out:  out,
		log:  log,
	}
}

// Run drives the menu until the user exits or input ends. A plain EOF
// is a normal exit; a read error on the input is returned.
func (a *App) Run(ctx context.Context) error {
	for {
		fmt.Fprintf(a.out, "\nCloudflare DNS Manager (%s)\n", a.zone.Domain)
		fmt.Fprintln(a.out, "1. List DNS Records")
		fmt.Fprintln(a.out, "2. Add DNS Record")
		fmt.Fprintln(a.out, "3. Update DNS Record")
		fmt.Fprintln(a.out, "4. Delete DNS Record")
		fmt.Fprintln(a.out, "5. Exit")

		choice, err := a.prompt("Enter your choice: ")
		if err != nil {
			return a.in.Err()
		}

		var actionErr error
		switch choice {
		case "1":
			a.listAction(ctx)
		case "2":
			actionErr = a.addAction(ctx)
		case "3":
			actionErr = a.updateAction(ctx)
		case "4":
			actionErr = a.deleteAction(ctx)
		case "5":
			fmt.Fprintln(a.out, "Exiting.")
			return nil
		default:
			fmt.Fprintln(a.out, "Invalid choice. Please try again.")
		}

		if errors.Is(actionErr, errInputClosed) {
			return a.in.Err()
		}
	}
}

// prompt writes the prompt text and reads one trimmed line. It returns
// errInputClosed when the input ends, which aborts the surrounding
// action and exits the loop.
func (a *App) prompt(text string) (string, error) {
	fmt.Fprint(a.out, text)
	if !a.in.Scan() {
		return "", errInputClosed
	}
	return strings.TrimSpace(a.in.Text()), nil
}

// fetchRecords pulls the current snapshot. Transport failures are
// non-fatal here: the error is reported and an empty snapshot returned.
func (a *App) fetchRecords(ctx context.Context) []dnstypes.DNSRecord {
	records, err := a.api.ListRecords(ctx, a.zone.ID)
	if err != nil {
		a.log.WithError(err).Warn("failed to list records")
		fmt.Fprintf(a.out, "Error fetching DNS records: %v\n", err)
		return nil
	}
	return records
}

func (a *App) listAction(ctx context.Context) {
	records := a.fetchRecords(ctx)
	if len(records) > 0 {
		a.renderRecords(records)
	}
}

func (a *App) addAction(ctx context.Context) error {
	fmt.Fprintln(a.out, "\nAdd a new DNS Record")
	fields, err := a.promptCreateFields()
	if errors.Is(err, errInputClosed) {
		return err
	}
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return nil
	}
	if err := a.api.CreateRecord(ctx, a.zone.ID, fields); err != nil {
		fmt.Fprintf(a.out, "Error adding DNS record: %v\n", err)
		return nil
	}
	fmt.Fprintln(a.out, "\nSuccessfully added DNS record.")
	return nil
}

func (a *App) updateAction(ctx context.Context) error {
	records := a.fetchRecords(ctx)
	if len(records) == 0 {
		return nil
	}
	a.renderRecords(records)

	recordID, err := a.prompt("\nEnter the ID of the record to update: ")
	if err != nil {
		return err
	}
	current := findRecord(records, recordID)
	if current == nil {
		fmt.Fprintf(a.out, "Error: %v\n", ErrRecordNotFound)
		return nil
	}

	fields, err := a.promptUpdateFields(*current)
	if errors.Is(err, errInputClosed) {
		return err
	}
	if err != nil {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return nil
	}
	if err := a.api.UpdateRecord(ctx, a.zone.ID, recordID, fields); err != nil {
		fmt.Fprintf(a.out, "Error updating DNS record: %v\n", err)
		return nil
	}
	fmt.Fprintln(a.out, "\nSuccessfully updated DNS record.")
	return nil
}

func (a *App) deleteAction(ctx context.Context) error {
	records := a.fetchRecords(ctx)
	if len(records) == 0 {
		return nil
	}
	a.renderRecords(records)

	recordID, err := a.prompt("\nEnter the ID of the record to delete: ")
	if err != nil {
		return err
	}
	if findRecord(records, recordID) == nil {
		fmt.Fprintf(a.out, "Error: %v\n", ErrRecordNotFound)
		return nil
	}

	confirmation, err := a.prompt(fmt.Sprintf("Are you sure you want to delete record %s? (yes/no): ", recordID))
	if err != nil {
		return err
	}
	if !strings.EqualFold(confirmation, "yes") {
		fmt.Fprintln(a.out, "Deletion cancelled.")
		return nil
	}

	if err := a.api.DeleteRecord(ctx, a.zone.ID, recordID); err != nil {
		fmt.Fprintf(a.out, "Error deleting DNS record: %v\n", err)
		return nil
	}
	fmt.Fprintln(a.out, "\nSuccessfully deleted DNS record.")
	return nil
}

// findRecord locates a record by ID within the snapshot.
func findRecord(records []dnstypes.DNSRecord, id string) *dnstypes.DNSRecord {
	for i := range records {
		if records[i].ID == id {
			return &records[i]
		}
	}
	return nil
}
