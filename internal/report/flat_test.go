package report

import (
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"

	"github.com/zombor/invoice-reader/internal/invoice"
)

var _ = Describe("WriteFlat", func() {
	var (
		records []invoice.FileRecord
		dest    string
		err     error
		rows    [][]string
		xlsx    *excelize.File
	)

	BeforeEach(func() {
		dest = filepath.Join(GinkgoT().TempDir(), "flat.xlsx")
		records = nil
	})

	JustBeforeEach(func() {
		err = WriteFlat(records, dest)
		if err == nil {
			var openErr error
			xlsx, openErr = excelize.OpenFile(dest)
			Expect(openErr).NotTo(HaveOccurred())
			DeferCleanup(xlsx.Close)
			rows, openErr = xlsx.GetRows(flatSheet)
			Expect(openErr).NotTo(HaveOccurred())
		}
	})

	When("there are no records", func() {
		It("should write only the source file header", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(Equal([][]string{{"Source File"}}))
		})
	})

	When("there are records", func() {
		BeforeEach(func() {
			records = []invoice.FileRecord{
				{
					Filename: "enero.pdf",
					Record: &invoice.Record{
						InvoiceNumber: strPtr("111"),
						RealReading:   true,
						SupplyAddress: strPtr("CALLE MAYOR 1"),
						Consumption: invoice.ConsumptionSummary{
							Energy:     strPtr("45,30 €"),
							Services:   strPtr("12,70 €"),
							TotalToPay: strPtr("58,00 €"),
						},
					},
				},
				{
					Filename: "febrero.pdf",
					Record: &invoice.Record{
						InvoiceNumber: strPtr("222"),
						Consumption: invoice.ConsumptionSummary{
							TotalToPay: strPtr("10,00 €"),
						},
					},
				},
			}
		})

		It("should not return an error", func() {
			Expect(err).NotTo(HaveOccurred())
		})

		It("should put the summary keys after the top-level keys", func() {
			Expect(rows[0]).To(Equal([]string{
				"Source File",
				invoice.KeyBillingPeriod,
				invoice.KeyInvoiceNumber,
				invoice.KeyIssueDate,
				invoice.KeyChargeDate,
				invoice.KeyRealReading,
				invoice.KeyAccountHolder,
				invoice.KeyHolderTaxID,
				invoice.KeyContractReference,
				invoice.KeyTotalAmount,
				invoice.KeySupplyAddress,
				invoice.KeyEnergy,
				invoice.KeyServices,
				invoice.KeyTotalToPay,
			}))
		})

		It("should write one row per record in order", func() {
			Expect(rows).To(HaveLen(3))
			Expect(rows[1][0]).To(Equal("enero.pdf"))
			Expect(rows[2][0]).To(Equal("febrero.pdf"))
		})

		It("should fill the columns from the record", func() {
			Expect(rows[1][2]).To(Equal("111"))
			Expect(rows[1][5]).To(Equal("TRUE"))
			Expect(rows[1][10]).To(Equal("CALLE MAYOR 1"))
			Expect(rows[1][11]).To(Equal("45,30 €"))
			Expect(rows[1][13]).To(Equal("58,00 €"))
		})

		It("should leave missing values empty", func() {
			v, cellErr := xlsx.GetCellValue(flatSheet, "B3")
			Expect(cellErr).NotTo(HaveOccurred())
			Expect(v).To(BeEmpty())
			v, cellErr = xlsx.GetCellValue(flatSheet, "F3")
			Expect(cellErr).NotTo(HaveOccurred())
			Expect(v).To(Equal("FALSE"))
			v, cellErr = xlsx.GetCellValue(flatSheet, "N3")
			Expect(cellErr).NotTo(HaveOccurred())
			Expect(v).To(Equal("10,00 €"))
		})

		It("should freeze the header row", func() {
			panes, panesErr := xlsx.GetPanes(flatSheet)
			Expect(panesErr).NotTo(HaveOccurred())
			Expect(panes.Freeze).To(BeTrue())
			Expect(panes.YSplit).To(Equal(1))
		})
	})

	When("the destination cannot be created", func() {
		BeforeEach(func() {
			dest = filepath.Join(GinkgoT().TempDir(), "missing", "flat.xlsx")
		})

		It("returns the error", func() {
			Expect(err).To(HaveOccurred())
		})
	})
})

var _ = Describe("writeFlat", func() {
	var (
		entries []flatEntry
		dest    string
		rows    [][]string
	)

	BeforeEach(func() {
		dest = filepath.Join(GinkgoT().TempDir(), "flat.xlsx")
	})

	JustBeforeEach(func() {
		Expect(writeFlat(entries, dest)).To(Succeed())
		xlsx, err := excelize.OpenFile(dest)
		Expect(err).NotTo(HaveOccurred())
		defer xlsx.Close()
		rows, err = xlsx.GetRows(flatSheet)
		Expect(err).NotTo(HaveOccurred())
	})

	When("a later entry has a field the first lacks", func() {
		BeforeEach(func() {
			entries = []flatEntry{
				{
					filename: "a.pdf",
					fields:   []invoice.Field{{Key: "Invoice Number", Value: "1"}},
					summary:  []invoice.Field{{Key: "Total to Pay", Value: "5,00 €"}},
				},
				{
					filename: "b.pdf",
					fields: []invoice.Field{
						{Key: "Invoice Number", Value: "2"},
						{Key: "Meter", Value: "ES0021"},
					},
					summary: []invoice.Field{{Key: "Total to Pay", Value: "7,00 €"}},
				},
			}
		})

		It("should derive the header from the first entry only", func() {
			Expect(rows[0]).To(Equal([]string{"Source File", "Invoice Number", "Total to Pay"}))
		})

		It("should drop the extra field", func() {
			Expect(rows[2]).To(Equal([]string{"b.pdf", "2", "7,00 €"}))
		})
	})

	When("a later entry lacks a field the first has", func() {
		BeforeEach(func() {
			entries = []flatEntry{
				{
					filename: "a.pdf",
					fields: []invoice.Field{
						{Key: "Invoice Number", Value: "1"},
						{Key: "Holder", Value: "ANA"},
					},
				},
				{
					filename: "b.pdf",
					fields:   []invoice.Field{{Key: "Holder", Value: "LUIS"}},
				},
			}
		})

		It("should write an empty string in its place", func() {
			Expect(rows[2]).To(Equal([]string{"b.pdf", "", "LUIS"}))
		})
	})
})
