package database

import "bizportal/internal/domain/entities"

// Seed collections the portal starts with. They mirror the demo data of the
// customer portal: a small catalog, a few historic quotes/orders/invoices and
// two support tickets.

func MockProducts() []entities.Product {
	return []entities.Product{
		{
			ID:          "1",
			Supplier:    "Cisco",
			Title:       "Meraki MX68 Security Appliance",
			Category:    "Security",
			Summary:     "Cloud-managed security and SD-WAN for small branches.",
			Description: "The Cisco Meraki MX68 is a cloud-managed security and SD-WAN appliance designed for small retail branches and clinics. It offers secure connectivity, easy management, and robust performance.",
			Price:       430.00,
			Image:       "input_file_5.png",
			Features:    []string{"SD-WAN & Auto VPN", "Layer 7 Traffic Shaping", "Content Filtering", "4G Cellular Failover"},
		},
		{
			ID:          "2",
			Supplier:    "Microsoft",
			Title:       "Microsoft 365 Business Standard",
			Category:    "Software",
			Summary:     "Desktop apps and cloud services for business.",
			Description: "Get work done with productivity solutions and stay connected with your employees and clients whether you're working remotely or onsite. Includes Word, Excel, Teams, and more.",
			Price:       9.60,
			Image:       "input_file_4.png",
			Features:    []string{"Office Apps (Word, Excel, PPT)", "1TB OneDrive Storage", "Exchange Email Hosting", "Microsoft Teams"},
		},
		{
			ID:          "3",
			Supplier:    "AWS",
			Title:       "EC2 Cloud Compute Instance",
			Category:    "Cloud",
			Summary:     "Scalable cloud computing capacity (t3.medium).",
			Description: "Amazon Elastic Compute Cloud (Amazon EC2) provides scalable computing capacity in the Amazon Web Services (AWS) cloud. Ideal for hosting web servers and applications.",
			Price:       45.00,
			Image:       "input_file_3.png",
			Features:    []string{"2 vCPUs", "4 GiB Memory", "EBS Storage Support", "Global Availability Zones"},
		},
		{
			ID:          "4",
			Supplier:    "Dell",
			Title:       "UltraSharp 24\" Monitor",
			Category:    "Hardware",
			Summary:     "High performance IPS monitor for business.",
			Description: "Experience superb screen clarity with Full HD resolution. The Dell UltraSharp 24 Monitor is constructed with a premium panel guaranteeing 99% sRGB coverage.",
			Price:       175.00,
			Image:       "input_file_2.png",
			Features:    []string{"24-inch IPS Display", "Full HD 1920x1080", "Adjustable Stand", "USB 3.0 Hub"},
		},
		{
			ID:          "5",
			Supplier:    "Check Point",
			Title:       "Quantum Spark 1530 Firewall",
			Category:    "Security",
			Summary:     "Next-Gen Firewall for small to medium business.",
			Description: "Advanced threat prevention and secure connectivity. The Check Point 1530 offers enterprise-grade security in a compact form factor.",
			Price:       550.00,
			Image:       "input_file_1.png",
			Features:    []string{"Threat Prevention", "VPN Remote Access", "Integrated Wi-Fi", "Unified Management"},
		},
		{
			ID:          "6",
			Supplier:    "BT",
			Title:       "Business Fibre 900",
			Category:    "Broadband",
			Summary:     "Ultra-fast full fibre with speeds up to 900Mbps.",
			Description: "Our fastest business broadband package. Perfect for data-heavy businesses, cloud computing, and VoIP systems. Includes 24/7 support and static IP.",
			Price:       49.99,
			Image:       "input_file_0.png",
			Features:    []string{"900Mbps Download", "100Mbps Upload", "Enhanced Security", "4G Back-up"},
		},
	}
}

// MockQuotes returns historic quotes as they are shown in the portal: the
// pending request is under review, decided ones keep their status.
func MockQuotes() []entities.Quote {
	return []entities.Quote{
		{ID: "QT-2023-881", ProductID: "1", ProductTitle: "Cisco Meraki MX68 (Bulk Order x5)", Date: "2023-11-20", Status: entities.QuoteStatusInReview, Amount: 2150.00, Quantity: 5, LastActionBy: entities.ActorAdmin},
		{ID: "QT-2023-755", ProductID: "6", ProductTitle: "Business Fibre 900 Upgrade", Date: "2023-11-10", Status: entities.QuoteStatusApproved, Amount: 49.99, Quantity: 1, LastActionBy: entities.ActorAdmin},
		{ID: "QT-2023-602", ProductID: "3", ProductTitle: "AWS Dedicated Host Configuration", Date: "2023-10-05", Status: entities.QuoteStatusRejected, Amount: 45.00, Quantity: 1, LastActionBy: entities.ActorAdmin},
	}
}

// MockOrders returns historic orders. Delivered orders sit on the final
// stage; anything still open restarts the pipeline at stage 1.
func MockOrders() []entities.Order {
	const completion = "NOV 24, 2023"
	return []entities.Order{
		{ID: "ORD-7782-X", Date: "2023-10-25", Status: entities.OrderStatusDelivered, Item: "Dell UltraSharp 24\"", Amount: 175.00, TrackingStage: entities.FinalTrackingStage, EstimatedCompletion: completion},
		{ID: "ORD-9921-A", Date: "2023-11-02", Status: entities.OrderStatusInProgress, Item: "Microsoft 365 License (x10)", Amount: 96.00, TrackingStage: 1, EstimatedCompletion: completion},
		{ID: "ORD-1102-B", Date: "2023-11-10", Status: entities.OrderStatusInProgress, Item: "Cisco Meraki MX68", Amount: 430.00, TrackingStage: 1, EstimatedCompletion: completion},
	}
}

func MockInvoices() []entities.Invoice {
	return []entities.Invoice{
		{
			ID:      "INV-2023-001",
			OrderID: "ORD-7782-X",
			Date:    "2023-10-25",
			DueDate: "2023-11-25",
			Amount:  175.00,
			VAT:     35.00,
			Total:   210.00,
			Status:  entities.InvoiceStatusPaid,
			Items:   []entities.InvoiceItem{{Description: "Dell UltraSharp 24\" Monitor", Quantity: 1, UnitPrice: 175.00}},
		},
		{
			ID:      "INV-2023-002",
			OrderID: "ORD-PREV-99",
			Date:    "2023-09-15",
			DueDate: "2023-10-15",
			Amount:  49.99,
			VAT:     10.00,
			Total:   59.99,
			Status:  entities.InvoiceStatusPaid,
			Items:   []entities.InvoiceItem{{Description: "Business Fibre 900 - Sept Service", Quantity: 1, UnitPrice: 49.99}},
		},
	}
}

func MockTickets() []entities.Ticket {
	return []entities.Ticket{
		{ID: "TCK-2023-001", Subject: "AWS Instance Connectivity", Status: entities.TicketStatusOpen, Date: "2023-11-12", Category: "Technical"},
		{ID: "TCK-2023-002", Subject: "Billing inquiry Oct", Status: entities.TicketStatusClosed, Date: "2023-10-15", Category: "Billing"},
	}
}
