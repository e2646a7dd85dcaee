package xmlanalysis

// Every file seems to contain only one sample result, but it may have more.
type sampleResultsXMLFile struct {
	SampleResults []sampleResult `xml:"SampleResult"`
}

type sampleResult struct {
	Timestamp string `xml:"RecalculationDateTime,attr"`
	Method    string `xml:"MethodName,attr"`

	SampleIDs             []sampleID    `xml:"SampleIDs>SampleID"`
	MeasurementStatistics []measurement `xml:"MeasurementStatistics>Measurement"`
}

type sampleID struct {
	Name  string `xml:"IDName"`
	Value string `xml:"IDValue"`
}

type measurement struct {
	Elements []element `xml:"Elements>Element"`
}

type element struct {
	Name string `xml:"ElementName,attr"`

	ElementResults []result `xml:"ElementResult"`
}

type result struct {
	Unit     string `xml:"Unit,attr"`
	StatType string `xml:"StatType,attr"` // 'Reported' is the averaged value

	ResultValue float64 `xml:"ResultValue"`
}

func (sr *sampleResult) findSampleID(id string) string {
	for _, sID := range sr.SampleIDs {
		if sID.Name == id {
			return sID.Value
		}
	}
	return ""
}

func (sr *sampleResult) sampleName() string {
	return sr.findSampleID("Sample ID")
}

func (sr *sampleResult) operator() string {
	return sr.findSampleID("Operator")
}

func (el *element) reportedResult() *result {
	for i := range el.ElementResults {
		if el.ElementResults[i].StatType == "Reported" {
			return &el.ElementResults[i]
		}
	}
	return nil
}
