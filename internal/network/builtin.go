package network

const (
	catImageURL          = "https://images.unsplash.com/photo-1514888286974-6c03e2ca1dba?auto=format&fit=crop&w=400&h=400"
	dogImageURL          = "https://images.unsplash.com/photo-1517849845537-4d257902454a?auto=format&fit=crop&w=400&h=400"
	luxuryHouseImageURL  = "https://images.unsplash.com/photo-1512917774080-9991f1c4c750?auto=format&fit=crop&w=400&h=400"
	starterHouseImageURL = "https://images.unsplash.com/photo-1518780664697-55e3ad937233?auto=format&fit=crop&w=400&h=400"
)

// Layer names and descriptions shared by the image classification examples.
const (
	inputLayerName   = "Input Layer"
	hidden1LayerName = "Hidden Layer 1"
	hidden2LayerName = "Hidden Layer 2"
	outputLayerName  = "Output Layer"

	imageInputDescription   = "Raw pixel values from the input image"
	imageHidden1Description = "Detects fundamental visual features"
	imageHidden2Description = "Combines into complex patterns"
	imageOutputDescription  = "Final classification"

	houseInputDescription   = "Raw numerical input features"
	houseHidden1Description = "Basic feature combinations"
	houseHidden2Description = "High-level property aspects"
	houseOutputDescription  = "Predicted house price"
)

var (
	imageHidden1Labels = []string{"Edges", "Colors", "Shapes", "Texture"}
	imageHidden2Labels = []string{"Whiskers", "Ears", "Fur", "Eyes"}
	imageOutputLabels  = []string{"Cat", "Dog"}

	houseHidden1Labels = []string{"Living Space", "Family Size", "Neighborhood", "Age Factor"}
	houseHidden2Labels = []string{"Luxury Level", "Family Appeal", "Location Value", "Investment Age"}
)

var defaultCatalog = MustCatalog(ExampleCat,
	imageEntry(ExampleCat, catImageURL,
		[]string{"RGB: 255,220,180", "RGB: 190,165,140", "RGB: 220,198,175", "RGB: 245,210,188"},
		[4][]float64{
			{0.8, 0.6, 0.7, 0.5},
			{0.9, 0.7, 0.8, 0.6},
			{0.95, 0.85, 0.9, 0.8},
			{0.92, 0.08},
		},
	),
	imageEntry(ExampleDog, dogImageURL,
		[]string{"RGB: 120,98,75", "RGB: 180,155,130", "RGB: 200,178,155", "RGB: 165,140,118"},
		[4][]float64{
			{0.7, 0.8, 0.6, 0.75},
			{0.85, 0.75, 0.9, 0.8},
			{0.3, 0.4, 0.95, 0.85},
			{0.15, 0.85},
		},
	),
	houseEntry(ExampleStarterHouse, starterHouseImageURL,
		[]string{"1,200 sqft", "2 beds", "Suburban", "1985"},
		"$275,000",
		[4][]float64{
			{0.45, 0.4, 0.5, 0.4},
			{0.5, 0.45, 0.55, 0.5},
			{0.4, 0.6, 0.5, 0.45},
			{0.45},
		},
	),
	houseEntry(ExampleLuxuryHouse, luxuryHouseImageURL,
		[]string{"4,500 sqft", "5 beds", "Beachfront", "2022"},
		"$2,450,000",
		[4][]float64{
			{0.95, 0.9, 0.98, 0.85},
			{0.92, 0.85, 0.95, 0.9},
			{0.95, 0.85, 0.98, 0.9},
			{0.95},
		},
	),
)

// DefaultCatalog returns the built-in four-example catalog.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

func imageEntry(id ExampleID, imageURL string, pixelLabels []string, activations [4][]float64) EntrySpec {
	return EntrySpec{
		ID:       id,
		ImageURL: imageURL,
		Layers: []LayerSpec{
			{Name: inputLayerName, NeuronCount: 4, FeatureLabels: pixelLabels, Description: imageInputDescription, Icon: IconGrid, Activations: activations[0]},
			{Name: hidden1LayerName, NeuronCount: 4, FeatureLabels: imageHidden1Labels, Description: imageHidden1Description, Icon: IconEye, Activations: activations[1]},
			{Name: hidden2LayerName, NeuronCount: 4, FeatureLabels: imageHidden2Labels, Description: imageHidden2Description, Icon: IconFingerprint, Activations: activations[2]},
			{Name: outputLayerName, NeuronCount: 2, FeatureLabels: imageOutputLabels, Description: imageOutputDescription, Icon: IconBrain, Activations: activations[3]},
		},
	}
}

func houseEntry(id ExampleID, imageURL string, inputLabels []string, price string, activations [4][]float64) EntrySpec {
	return EntrySpec{
		ID:       id,
		ImageURL: imageURL,
		Layers: []LayerSpec{
			{Name: inputLayerName, NeuronCount: 4, FeatureLabels: inputLabels, Description: houseInputDescription, Icon: IconGrid, Activations: activations[0]},
			{Name: hidden1LayerName, NeuronCount: 4, FeatureLabels: houseHidden1Labels, Description: houseHidden1Description, Icon: IconEye, Activations: activations[1]},
			{Name: hidden2LayerName, NeuronCount: 4, FeatureLabels: houseHidden2Labels, Description: houseHidden2Description, Icon: IconFingerprint, Activations: activations[2]},
			{Name: outputLayerName, NeuronCount: 1, FeatureLabels: []string{price}, Description: houseOutputDescription, Icon: IconBrain, Activations: activations[3]},
		},
	}
}
